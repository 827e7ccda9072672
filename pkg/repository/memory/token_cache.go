package memory

import (
	"sync"

	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

type tokenKey struct {
	installID  types.GitHubAppInstallID
	batchIndex int
}

type tokenCache struct {
	mu     sync.RWMutex
	tokens map[tokenKey]*model.ScopedToken
}

// NewTokenCache creates an in-memory scoped token cache. Entries are never
// evicted; the number of live keys is bounded by the number of
// (installation, batch) pairs.
func NewTokenCache() interfaces.TokenCache {
	return &tokenCache{
		tokens: make(map[tokenKey]*model.ScopedToken),
	}
}

func (x *tokenCache) Get(installID types.GitHubAppInstallID, batchIndex int) *model.ScopedToken {
	x.mu.RLock()
	defer x.mu.RUnlock()

	token, exists := x.tokens[tokenKey{installID: installID, batchIndex: batchIndex}]
	if !exists {
		return nil
	}

	return copyToken(token)
}

func (x *tokenCache) Put(token *model.ScopedToken) {
	x.mu.Lock()
	defer x.mu.Unlock()

	// Replace, never append: one entry per key at any time.
	x.tokens[tokenKey{installID: token.InstallID, batchIndex: token.BatchIndex}] = copyToken(token)
}

func copyToken(token *model.ScopedToken) *model.ScopedToken {
	copied := *token
	copied.Repositories = make([]types.RepoFullName, len(token.Repositories))
	copy(copied.Repositories, token.Repositories)
	return &copied
}
