package usecase

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/infra"
)

const (
	DefaultBatchSize = types.MaxBatchSize
	DefaultTokenTTL  = time.Hour
)

type UseCase struct {
	clients *infra.Clients

	batchSize   int
	tokenTTL    time.Duration
	permissions *model.TokenPermissions

	// issuance deduplicates concurrent token requests per (installID,
	// batchIndex) key: at most one in-flight GitHub call per batch.
	issuance singleflight.Group

	// refreshMu serializes directory refreshes; the snapshot swap is
	// all-or-nothing and must not race with itself.
	refreshMu sync.Mutex
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		batchSize:   DefaultBatchSize,
		tokenTTL:    DefaultTokenTTL,
		permissions: model.DefaultTokenPermissions(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// WithBatchSize sets the number of repositories per token. GitHub caps a
// token's scope at types.MaxBatchSize repositories.
func WithBatchSize(size int) Option {
	return func(x *UseCase) {
		x.batchSize = size
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.tokenTTL = ttl
	}
}

// WithPermissions sets the permission set requested for every token. One
// fixed set per issuance; no per-repository override within a batch.
func WithPermissions(perms *model.TokenPermissions) Option {
	return func(x *UseCase) {
		x.permissions = perms
	}
}

// ValidateConfig checks option values before the usecase is served.
func (x *UseCase) ValidateConfig() error {
	if x.batchSize < 1 || x.batchSize > types.MaxBatchSize {
		return goerr.Wrap(types.ErrInvalidOption, "batch size must be within 1..500",
			goerr.V("batchSize", x.batchSize),
		)
	}
	if x.tokenTTL <= 0 || x.tokenTTL > time.Hour {
		return goerr.Wrap(types.ErrInvalidOption, "token TTL must be within (0, 1h]",
			goerr.V("tokenTTL", x.tokenTTL),
		)
	}
	return nil
}
