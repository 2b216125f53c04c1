package genpatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/openai"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func newTestApp(t *testing.T, cfg *config.Config) *cli.Command {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../../i18n/locales/")
	require.NoError(t, err)

	suggesters := registry.NewSuggesterRegistry()
	require.NoError(t, suggesters.Register("openai", openai.NewSuggesterFactory()))
	require.NoError(t, suggesters.Register("gemini", gemini.NewSuggesterFactory()))

	return &cli.Command{
		Name:     "fixbot",
		Commands: []*cli.Command{NewGeneratePatchCommandFactory(suggesters).CreateCommand(trans, cfg)},
	}
}

func runApp(t *testing.T, app *cli.Command, args ...string) int {
	t.Helper()

	code := 0
	prev := cli.OsExiter
	cli.OsExiter = func(c int) {
		if code == 0 {
			code = c
		}
	}
	defer func() { cli.OsExiter = prev }()

	err := app.Run(context.Background(), append([]string{"fixbot"}, args...))
	if code == 0 && err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = 1
		}
	}
	return code
}

func testConfig() *config.Config {
	return &config.Config{
		AIConfig: config.AIConfig{
			Providers:   []string{"openai", "gemini"},
			OpenAIModel: "gpt-4o-mini",
			GeminiModel: "gemini-1.5-flash",
			MaxTokens:   800,
		},
	}
}

func TestGeneratePatchCommand(t *testing.T) {
	t.Run("should fall back to heuristics without provider credentials", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")

		dir := t.TempDir()
		logsPath := filepath.Join(dir, "ci.log")
		outPath := filepath.Join(dir, "fix.patch")
		require.NoError(t, os.WriteFile(logsPath, []byte("ModuleNotFoundError: No module named 'requests'\n"), 0644))

		app := newTestApp(t, testConfig())
		code := runApp(t, app, "generate-patch",
			"--logs", logsPath,
			"--repo-root", dir,
			"--out", outPath,
		)

		assert.Equal(t, 0, code)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "+++ b/requirements.txt")
		assert.Contains(t, string(data), "+requests")
	})

	t.Run("should write the notice patch for an unreadable log", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")

		dir := t.TempDir()
		outPath := filepath.Join(dir, "fix.patch")

		app := newTestApp(t, testConfig())
		code := runApp(t, app, "generate-patch",
			"--logs", filepath.Join(dir, "no-existe.log"),
			"--repo-root", dir,
			"--out", outPath,
		)

		assert.Equal(t, 0, code)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), ".fixbot_notice.txt")
		assert.Contains(t, string(data), "FixBot could not identify an automatic fix.")
	})

	t.Run("should exit 0 even when the patch cannot be written", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")

		dir := t.TempDir()
		logsPath := filepath.Join(dir, "ci.log")
		require.NoError(t, os.WriteFile(logsPath, []byte("nada interesante"), 0644))

		app := newTestApp(t, testConfig())
		code := runApp(t, app, "generate-patch",
			"--logs", logsPath,
			"--repo-root", dir,
			"--out", filepath.Join(dir, "no-existe", "fix.patch"),
		)

		assert.Equal(t, 0, code)
	})
}
