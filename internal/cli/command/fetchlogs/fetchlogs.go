package fetchlogs

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/FixBot/internal/services"
	"github.com/urfave/cli/v3"
)

const (
	exitWriteFailed       = 1
	exitMissingCredential = 2
)

type FetchLogsCommandFactory struct{}

func NewFetchLogsCommandFactory() *FetchLogsCommandFactory {
	return &FetchLogsCommandFactory{}
}

func (f *FetchLogsCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "fetch-logs",
		Usage:       t.GetMessage("fetch_command_usage", 0, nil),
		Description: t.GetMessage("fetch_command_description", 0, nil),
		Flags:       f.createFlags(t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *FetchLogsCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "repo",
			Usage:    t.GetMessage("repo_flag_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "run-id",
			Usage:    t.GetMessage("run_id_flag_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "out",
			Usage:    t.GetMessage("out_flag_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: t.GetMessage("token_flag_usage", 0, nil),
		},
	}
}

func (f *FetchLogsCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		token, err := config.ResolveToken(command.String("token"))
		if err != nil {
			return cli.Exit(t.GetMessage("error_missing_token", 0, nil), exitMissingCredential)
		}

		client, err := github.NewGitHubClient(command.String("repo"), token, cfg.APIBaseURL, t)
		if err != nil {
			return cli.Exit(err.Error(), exitWriteFailed)
		}

		service := services.NewCaptureService(client, t)

		// las fallas remotas degradan el contenido pero no el código de salida
		capture, warnings := service.CaptureRun(ctx, command.String("run-id"))
		for _, warning := range warnings {
			fmt.Fprintln(os.Stderr, warning)
		}

		outPath := command.String("out")
		if err := service.WriteSummary(capture, outPath); err != nil {
			msg := t.GetMessage("summary_write_failed", 0, map[string]interface{}{
				"Path":  outPath,
				"Error": err,
			})
			return cli.Exit(msg, exitWriteFailed)
		}

		fmt.Println(t.GetMessage("summary_written", 0, map[string]interface{}{
			"Path": outPath,
		}))
		return nil
	}
}
