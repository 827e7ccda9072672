package usecase

import (
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// InstallationSummary describes how one installation's repositories map onto
// token batches under the current snapshot and batch size.
type InstallationSummary struct {
	InstallID  types.GitHubAppInstallID `json:"install_id"`
	RepoCount  int                      `json:"repo_count"`
	BatchCount int                      `json:"batch_count"`
}

// SummarizeDirectory reports per-installation repository and batch counts for
// the current directory snapshot.
func (x *UseCase) SummarizeDirectory() []InstallationSummary {
	var summaries []InstallationSummary
	for _, installID := range x.clients.Directory().Installations() {
		names := x.clients.Directory().ListByInstall(installID)
		summaries = append(summaries, InstallationSummary{
			InstallID:  installID,
			RepoCount:  len(names),
			BatchCount: len(model.PartitionRepos(names, x.batchSize)),
		})
	}
	return summaries
}
