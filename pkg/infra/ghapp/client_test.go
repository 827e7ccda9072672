package ghapp_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/infra/ghapp"
	"github.com/secmon-lab/batchtoken/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		_, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"))
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey(""))
		gt.Error(t, err)
		gt.V(t, client).Nil()
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(0), types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Nil()
	})
}

func TestCreateInstallationTokenValidation(t *testing.T) {
	client := gt.R1(ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"))).NoError(t)
	ctx := context.Background()

	t.Run("empty repositories fail", func(t *testing.T) {
		_, err := client.CreateInstallationToken(ctx, &interfaces.CreateInstallationTokenInput{
			InstallID: 67890,
		})
		gt.Error(t, err)
	})

	t.Run("oversized batch fails before any request", func(t *testing.T) {
		repos := make([]types.RepoFullName, types.MaxBatchSize+1)
		for i := range repos {
			repos[i] = types.RepoFullName("org/repo")
		}
		_, err := client.CreateInstallationToken(ctx, &interfaces.CreateInstallationTokenInput{
			InstallID:    67890,
			Repositories: repos,
		})
		gt.Error(t, err)
	})
}

func TestGitHubAppIntegration(t *testing.T) {
	appIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	privateKey := testutil.GetEnvOrSkip(t, "TEST_GITHUB_PRIVATE_KEY")

	appID := gt.R1(strconv.ParseInt(appIDStr, 10, 64)).NoError(t)
	client := gt.R1(ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))).NoError(t)

	ctx := context.Background()

	installIDs := gt.R1(client.ListInstallations(ctx)).NoError(t)
	if len(installIDs) == 0 {
		t.Skip("the app has no installations")
	}

	repos := gt.R1(client.ListInstallationRepos(ctx, installIDs[0])).NoError(t)
	t.Logf("installation %d has %d repositories", installIDs[0], len(repos))
	if len(repos) == 0 {
		t.Skip("the installation has no repositories")
	}

	names := make([]types.RepoFullName, 0, len(repos))
	for _, repo := range repos {
		names = append(names, types.RepoFullName(repo.FullName))
	}
	if len(names) > types.MaxBatchSize {
		names = names[:types.MaxBatchSize]
	}

	token := gt.R1(client.CreateInstallationToken(ctx, &interfaces.CreateInstallationTokenInput{
		InstallID:    installIDs[0],
		Repositories: names,
		Permissions:  model.DefaultTokenPermissions(),
	})).NoError(t)

	gt.V(t, token.Token.Unmask()).NotEqual("")
	gt.True(t, !token.ExpiresAt.IsZero())
}
