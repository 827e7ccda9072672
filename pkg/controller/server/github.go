package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

type webhookAction int

const (
	webhookActionNone webhookAction = iota

	// webhookActionRefreshDirectory: the installation's repository set
	// changed, the directory snapshot is stale.
	webhookActionRefreshDirectory

	// webhookActionWarmToken: an event arrived for a repository; warm the
	// token cache so the next API call is a cache hit.
	webhookActionWarmToken
)

// githubAppEventResult represents the result of validating and parsing a
// GitHub App webhook event.
type githubAppEventResult struct {
	Action       webhookAction
	RepoFullName types.RepoFullName
}

// validateGitHubAppEvent validates the webhook signature and maps the event
// to a broker action. This function is synchronous and should be called
// before starting background processing.
func validateGitHubAppEvent(r *http.Request, key types.GitHubAppSecret) (*githubAppEventResult, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub App event",
		slog.String("type", github.WebHookType(r)),
	)

	return githubEventToAction(event), nil
}

func githubEventToAction(event interface{}) *githubAppEventResult {
	switch ev := event.(type) {
	case *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return &githubAppEventResult{Action: webhookActionRefreshDirectory}

	case *github.PushEvent:
		if ev.GetRepo().GetFullName() == "" {
			logging.Default().Warn("ignore push event without repository", slog.Any("event", ev))
			return &githubAppEventResult{Action: webhookActionNone}
		}
		return &githubAppEventResult{
			Action:       webhookActionWarmToken,
			RepoFullName: types.RepoFullName(ev.GetRepo().GetFullName()),
		}

	case *github.IssuesEvent:
		if ev.GetRepo().GetFullName() == "" {
			return &githubAppEventResult{Action: webhookActionNone}
		}
		return &githubAppEventResult{
			Action:       webhookActionWarmToken,
			RepoFullName: types.RepoFullName(ev.GetRepo().GetFullName()),
		}

	case *github.PullRequestEvent:
		if ev.GetRepo().GetFullName() == "" {
			return &githubAppEventResult{Action: webhookActionNone}
		}
		return &githubAppEventResult{
			Action:       webhookActionWarmToken,
			RepoFullName: types.RepoFullName(ev.GetRepo().GetFullName()),
		}

	case *github.PingEvent:
		return &githubAppEventResult{Action: webhookActionNone}

	default:
		logging.Default().Debug("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return &githubAppEventResult{Action: webhookActionNone}
	}
}

// runDirectoryRefresh executes a directory refresh in the provided context.
// Designed to be called from a background goroutine.
func runDirectoryRefresh(ctx context.Context, uc interfaces.UseCase) {
	logger := logging.From(ctx)
	logger.Info("Starting background directory refresh")

	if err := uc.RefreshDirectory(ctx); err != nil {
		logger.Error("Background directory refresh failed", slog.Any("error", err))
	} else {
		logger.Info("Background directory refresh completed")
	}
}

// runTokenWarmup obtains a token for the repository so the cache is hot for
// the outbound API call that follows the event.
func runTokenWarmup(ctx context.Context, uc interfaces.UseCase, fullName types.RepoFullName) {
	logger := logging.From(ctx).With(slog.String("repo", fullName.String()))
	logger.Info("Warming token cache")

	if _, err := uc.TokenForRepository(ctx, fullName); err != nil {
		logger.Error("Token warmup failed", slog.Any("error", err))
	} else {
		logger.Info("Token cache warmed")
	}
}

// Test helpers - exported for testing
func GithubEventToActionForTest(event interface{}) (isRefresh, isWarm bool, repo types.RepoFullName) {
	result := githubEventToAction(event)
	return result.Action == webhookActionRefreshDirectory,
		result.Action == webhookActionWarmToken,
		result.RepoFullName
}
