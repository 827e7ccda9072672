package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// GitHubApp is the GitHub side of the broker: enumeration of installations
// and their repositories, and issuance of batch-scoped installation tokens.
// Pagination is fully drained inside the client; retry and timeout policy is
// the client's concern, not the broker's.
type GitHubApp interface {
	ListInstallations(ctx context.Context) ([]types.GitHubAppInstallID, error)
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error)
	CreateInstallationToken(ctx context.Context, input *CreateInstallationTokenInput) (*CreateInstallationTokenOutput, error)
}

type CreateInstallationTokenInput struct {
	InstallID    types.GitHubAppInstallID
	Repositories []types.RepoFullName
	Permissions  *model.TokenPermissions
}

type CreateInstallationTokenOutput struct {
	Token     types.TokenValue
	ExpiresAt time.Time

	// ScopedRepositories is the repository set GitHub actually bound the
	// token to, echoed back from the API response.
	ScopedRepositories []types.RepoFullName
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
