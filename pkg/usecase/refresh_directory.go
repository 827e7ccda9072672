package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

// RefreshDirectory re-enumerates every installation of the App and all
// repositories each installation can see, then swaps the directory snapshot
// in one step. If any enumeration call fails, the previous snapshot is kept
// untouched. Archived and disabled repositories are excluded; a token scoped
// to them would be rejected by GitHub anyway.
func (x *UseCase) RefreshDirectory(ctx context.Context) error {
	x.refreshMu.Lock()
	defer x.refreshMu.Unlock()

	logger := logging.From(ctx)
	logger.Info("Starting directory refresh")

	installIDs, err := x.clients.GitHubApp().ListInstallations(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to enumerate installations")
	}

	var records []*model.Repository
	for _, installID := range installIDs {
		repos, err := x.clients.GitHubApp().ListInstallationRepos(ctx, installID)
		if err != nil {
			return goerr.Wrap(err, "failed to enumerate installation repositories",
				goerr.V("installID", installID),
			)
		}

		for _, repo := range repos {
			if repo.Archived || repo.Disabled {
				continue
			}

			fullName := repo.FullName
			if fullName == "" {
				fullName = repo.Owner + "/" + repo.Name
			}

			records = append(records, &model.Repository{
				FullName:  types.RepoFullName(fullName),
				ID:        repo.ID,
				InstallID: installID,
			})
		}
	}

	if err := x.clients.Directory().Replace(records); err != nil {
		return goerr.Wrap(err, "failed to replace directory snapshot")
	}

	logger.Info("Directory refresh completed",
		slog.Int("installations", len(installIDs)),
		slog.Int("repositories", len(records)),
	)

	return nil
}
