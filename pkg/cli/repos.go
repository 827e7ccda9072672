package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/batchtoken/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func reposCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		broker    config.Broker
		bigQuery  config.BigQuery
	)

	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"r"},
		Usage:   "List installations with repository and batch counts",
		Flags: slice.Flatten(
			githubApp.Flags(),
			broker.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := buildUseCase(ctx, &githubApp, &broker, &bigQuery)
			if err != nil {
				return err
			}

			if err := uc.RefreshDirectory(ctx); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "INSTALL_ID\tREPOS\tBATCHES")
			for _, s := range uc.SummarizeDirectory() {
				fmt.Fprintf(w, "%d\t%d\t%d\n", s.InstallID, s.RepoCount, s.BatchCount)
			}
			return w.Flush()
		},
	}
}
