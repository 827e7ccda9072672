package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

type UseCase interface {
	// TokenForRepository resolves the repository's installation and batch,
	// and returns a valid scoped token for that batch, issuing a new one at
	// most once per call.
	TokenForRepository(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error)

	// RefreshDirectory re-enumerates all installations and repositories and
	// swaps the directory snapshot. All-or-nothing: on failure the previous
	// snapshot is kept.
	RefreshDirectory(ctx context.Context) error
}
