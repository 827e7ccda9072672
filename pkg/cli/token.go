package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/batchtoken/pkg/cli/config"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func tokenCommand() *cli.Command {
	var (
		output string

		githubApp config.GitHubApp
		broker    config.Broker
		bigQuery  config.BigQuery
	)

	return &cli.Command{
		Name:      "token",
		Aliases:   []string{"t"},
		Usage:     "Issue a scoped token for a repository and print it",
		ArgsUsage: "<owner/repo>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output format [token|json]",
				Value:       "token",
				Destination: &output,
			},
		}, githubApp.Flags(), broker.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			fullName := c.Args().First()
			if fullName == "" || !strings.Contains(fullName, "/") {
				return goerr.New("repository must be specified as owner/repo",
					goerr.V("args", c.Args().Slice()))
			}

			uc, err := buildUseCase(ctx, &githubApp, &broker, &bigQuery)
			if err != nil {
				return err
			}

			if err := uc.RefreshDirectory(ctx); err != nil {
				return err
			}

			token, err := uc.TokenForRepository(ctx, types.RepoFullName(fullName))
			if err != nil {
				return err
			}

			switch output {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"token":       token.Value.Unmask(),
					"install_id":  token.InstallID,
					"batch_index": token.BatchIndex,
					"repo_count":  len(token.Repositories),
					"expires_at":  token.ExpiresAt.Format(time.RFC3339),
				})

			case "token":
				fmt.Println(token.Value.Unmask())
				return nil

			default:
				return goerr.New("unsupported output format", goerr.V("output", output))
			}
		},
	}
}
