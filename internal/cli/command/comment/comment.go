package comment

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/FixBot/internal/services"
	"github.com/urfave/cli/v3"
)

// Códigos de salida del comando: 2 si no hay credencial (antes de tocar la
// red), 1 si la escritura remota falla.
const (
	exitRemoteFailed      = 1
	exitMissingCredential = 2
)

type CommentCommandFactory struct{}

func NewCommentCommandFactory() *CommentCommandFactory {
	return &CommentCommandFactory{}
}

func (f *CommentCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "comment",
		Usage:       t.GetMessage("comment_command_usage", 0, nil),
		Description: t.GetMessage("comment_command_description", 0, nil),
		Flags:       f.createFlags(t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *CommentCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "repo",
			Usage:    t.GetMessage("repo_flag_usage", 0, nil),
			Required: true,
		},
		&cli.IntFlag{
			Name:     "pr",
			Usage:    t.GetMessage("pr_flag_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "message",
			Usage:    t.GetMessage("message_flag_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: t.GetMessage("token_flag_usage", 0, nil),
		},
	}
}

func (f *CommentCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		token, err := config.ResolveToken(command.String("token"))
		if err != nil {
			return cli.Exit(t.GetMessage("error_missing_token", 0, nil), exitMissingCredential)
		}

		client, err := github.NewGitHubClient(command.String("repo"), token, cfg.APIBaseURL, t)
		if err != nil {
			return cli.Exit(err.Error(), exitRemoteFailed)
		}

		service := services.NewCommentService(client)
		url, err := service.PostComment(ctx, int(command.Int("pr")), command.String("message"))
		if err != nil {
			msg := t.GetMessage("comment_post_failed", 0, map[string]interface{}{
				"Error": err,
			})
			return cli.Exit(msg, exitRemoteFailed)
		}

		fmt.Println(t.GetMessage("comment_posted", 0, map[string]interface{}{
			"URL": url,
		}))
		return nil
	}
}
