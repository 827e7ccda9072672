package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}

	return client, nil
}

// buildAppClient authenticates as the App itself (signed JWT). App-level
// endpoints: installation listing and token issuance.
func (x *Client) buildAppClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}

// buildInstallClient authenticates as one installation. Installation-level
// endpoints: repository listing.
func (x *Client) buildInstallClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport")
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}

func (x *Client) ListInstallations(ctx context.Context) ([]types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	var installIDs []types.GitHubAppInstallID
	opts := &github.ListOptions{PerPage: 100}

	for {
		installations, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return nil, wrapGitHubError(err, "failed to list installations")
		}

		for _, inst := range installations {
			installIDs = append(installIDs, types.GitHubAppInstallID(inst.GetID()))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed installations",
		slog.Int("count", len(installIDs)),
	)

	return installIDs, nil
}

func (x *Client) ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
	client, err := x.buildInstallClient(installID)
	if err != nil {
		return nil, err
	}

	var allRepos []*model.GitHubAPIRepository
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, wrapGitHubError(err, "failed to list installation repos",
				goerr.V("installID", installID),
			)
		}

		for _, repo := range result.Repositories {
			allRepos = append(allRepos, &model.GitHubAPIRepository{
				ID:       repo.GetID(),
				Owner:    repo.GetOwner().GetLogin(),
				Name:     repo.GetName(),
				FullName: repo.GetFullName(),
				Archived: repo.GetArchived(),
				Disabled: repo.GetDisabled(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installation repos",
		slog.Int("count", len(allRepos)),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}

func (x *Client) CreateInstallationToken(ctx context.Context, input *interfaces.CreateInstallationTokenInput) (*interfaces.CreateInstallationTokenOutput, error) {
	if len(input.Repositories) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repositories are empty")
	}
	if len(input.Repositories) > types.MaxBatchSize {
		return nil, goerr.Wrap(types.ErrInvalidOption, "too many repositories for one token",
			goerr.V("count", len(input.Repositories)),
		)
	}

	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	// The token endpoint takes bare repository names; all members of a batch
	// share one installation, so the owner prefix is redundant.
	repoNames := make([]string, len(input.Repositories))
	for i, fullName := range input.Repositories {
		repoNames[i] = bareRepoName(string(fullName))
	}

	opts := &github.InstallationTokenOptions{
		Repositories: repoNames,
	}
	if input.Permissions != nil {
		opts.Permissions = buildPermissions(input.Permissions)
	}

	// https://docs.github.com/en/rest/apps/apps#create-an-installation-access-token-for-an-app
	token, resp, err := client.Apps.CreateInstallationToken(ctx, int64(input.InstallID), opts)
	if err != nil {
		return nil, wrapGitHubError(err, "failed to create installation token",
			goerr.V("installID", input.InstallID),
			goerr.V("repoCount", len(input.Repositories)),
		)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, goerr.Wrap(types.ErrGitHubAPI, "unexpected status for installation token",
			goerr.V("status", resp.StatusCode),
		)
	}

	scoped := make([]types.RepoFullName, 0, len(token.Repositories))
	for _, repo := range token.Repositories {
		scoped = append(scoped, types.RepoFullName(repo.GetFullName()))
	}

	logging.From(ctx).Info("Issued installation token",
		slog.Any("installID", input.InstallID),
		slog.Int("repoCount", len(input.Repositories)),
		slog.Time("expiresAt", token.GetExpiresAt().Time),
	)

	return &interfaces.CreateInstallationTokenOutput{
		Token:              types.TokenValue(token.GetToken()),
		ExpiresAt:          token.GetExpiresAt().Time,
		ScopedRepositories: scoped,
	}, nil
}

func bareRepoName(fullName string) string {
	if idx := strings.IndexByte(fullName, '/'); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}

func buildPermissions(perms *model.TokenPermissions) *github.InstallationPermissions {
	out := &github.InstallationPermissions{}
	if perms.Contents != "" {
		out.Contents = github.String(perms.Contents)
	}
	if perms.Issues != "" {
		out.Issues = github.String(perms.Issues)
	}
	if perms.Metadata != "" {
		out.Metadata = github.String(perms.Metadata)
	}
	return out
}

// wrapGitHubError distinguishes an API rejection (non-2xx with a parsed
// response) from an unreachable endpoint.
func wrapGitHubError(err error, msg string, values ...goerr.Option) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		options := append([]goerr.Option{
			goerr.V("status", ghErr.Response.StatusCode),
			goerr.V("message", ghErr.Message),
		}, values...)
		return goerr.Wrap(types.ErrGitHubAPI, msg, options...)
	}

	options := append([]goerr.Option{goerr.V("cause", err.Error())}, values...)
	return goerr.Wrap(types.ErrGitHubUnavailable, msg, options...)
}
