package model

import (
	"time"

	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// ScopedToken is one cached installation access token, scoped to the member
// repositories of a single batch. The cache holds at most one ScopedToken per
// (InstallID, BatchIndex) pair; a refresh replaces the entry wholesale.
type ScopedToken struct {
	InstallID  types.GitHubAppInstallID
	BatchIndex int

	// Repositories is the batch membership at issuance time. Renewal
	// recomputes members from the current directory snapshot; this field
	// records what the token was actually scoped to.
	Repositories []types.RepoFullName

	Value     types.TokenValue `masq:"secret"`
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsValid reports whether the token is still usable at the given time.
// Expiry is checked lazily at read time; there is no proactive eviction.
func (x *ScopedToken) IsValid(now time.Time) bool {
	return x != nil && x.ExpiresAt.After(now)
}

// TokenPermissions is the permission set requested for every repository in a
// batch. One fixed set per issuance; no per-repository override.
type TokenPermissions struct {
	Contents string
	Issues   string
	Metadata string
}

// DefaultTokenPermissions grants read access to repository contents, which is
// what the webhook-driven API calls need.
func DefaultTokenPermissions() *TokenPermissions {
	return &TokenPermissions{
		Contents: "read",
		Metadata: "read",
	}
}
