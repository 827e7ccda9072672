package memory

import (
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/repository"
)

// directorySnapshot is one immutable view of all known repositories. Lookup
// and listing read whatever snapshot is current; Replace builds a new one and
// swaps it in under the write lock, so readers never see a half-updated state.
type directorySnapshot struct {
	byName    map[types.RepoFullName]*model.Repository
	byInstall map[types.GitHubAppInstallID][]types.RepoFullName
}

type directory struct {
	mu   sync.RWMutex
	snap *directorySnapshot
}

// NewDirectory creates an empty in-memory repository directory.
func NewDirectory() interfaces.RepoDirectory {
	return &directory{
		snap: &directorySnapshot{
			byName:    make(map[types.RepoFullName]*model.Repository),
			byInstall: make(map[types.GitHubAppInstallID][]types.RepoFullName),
		},
	}
}

func (x *directory) Replace(records []*model.Repository) error {
	snap := &directorySnapshot{
		byName:    make(map[types.RepoFullName]*model.Repository, len(records)),
		byInstall: make(map[types.GitHubAppInstallID][]types.RepoFullName),
	}

	for _, rec := range records {
		if rec.FullName == "" {
			return goerr.Wrap(repository.ErrInvalidInput, "repository full name is empty")
		}
		if _, exists := snap.byName[rec.FullName]; exists {
			return goerr.Wrap(repository.ErrInvalidInput, "duplicated repository full name",
				goerr.V("fullName", rec.FullName),
			)
		}

		copied := *rec
		snap.byName[rec.FullName] = &copied
		snap.byInstall[rec.InstallID] = append(snap.byInstall[rec.InstallID], rec.FullName)
	}

	// Canonical ordering for batch assignment: lexicographic ascending by
	// full name. Sorted once at swap time so ListByInstall is stable.
	for _, names := range snap.byInstall {
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	}

	x.mu.Lock()
	x.snap = snap
	x.mu.Unlock()

	return nil
}

func (x *directory) Lookup(fullName types.RepoFullName) (*model.Repository, error) {
	x.mu.RLock()
	snap := x.snap
	x.mu.RUnlock()

	rec, exists := snap.byName[fullName]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("fullName", fullName),
		)
	}

	copied := *rec
	return &copied, nil
}

func (x *directory) ListByInstall(installID types.GitHubAppInstallID) []types.RepoFullName {
	x.mu.RLock()
	snap := x.snap
	x.mu.RUnlock()

	names := snap.byInstall[installID]
	out := make([]types.RepoFullName, len(names))
	copy(out, names)
	return out
}

func (x *directory) Installations() []types.GitHubAppInstallID {
	x.mu.RLock()
	snap := x.snap
	x.mu.RUnlock()

	ids := make([]types.GitHubAppInstallID, 0, len(snap.byInstall))
	for id := range snap.byInstall {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (x *directory) Size() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.snap.byName)
}
