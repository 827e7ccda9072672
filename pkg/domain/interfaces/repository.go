package interfaces

import (
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// RepoDirectory holds the mapping from repository full name to its record.
// Replace swaps the whole snapshot atomically; readers observe either the old
// snapshot or the new one, never a mix.
type RepoDirectory interface {
	Replace(records []*model.Repository) error
	Lookup(fullName types.RepoFullName) (*model.Repository, error)

	// ListByInstall returns the full names of all repositories owned by the
	// installation in canonical order (lexicographic ascending). Batch
	// assignment is computed from this ordering, so it must be identical
	// across calls against the same snapshot.
	ListByInstall(installID types.GitHubAppInstallID) []types.RepoFullName

	// Installations returns all installation IDs present in the current
	// snapshot, ascending.
	Installations() []types.GitHubAppInstallID

	Size() int
}

// TokenCache stores at most one scoped token per (installID, batchIndex)
// pair. Put overwrites; there is no eviction, expiry is checked by readers.
type TokenCache interface {
	Get(installID types.GitHubAppInstallID, batchIndex int) *model.ScopedToken
	Put(token *model.ScopedToken)
}
