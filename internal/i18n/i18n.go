package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el bundle de traducciones. Los mensajes en inglés van
// embebidos como default; los demás idiomas se cargan desde localesPath.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "CI automation helper for failing workflows"

	[app_description]
	other = "FixBot posts PR comments, captures workflow run metadata and generates best-effort fix patches from CI failure logs"

	[comment_command_usage]
	other = "Post a comment to a pull request"

	[comment_command_description]
	other = "Posts a single comment to the given PR using the GitHub REST API"

	[fetch_command_usage]
	other = "Fetch run and job metadata from GitHub Actions"

	[fetch_command_description]
	other = "Writes a condensed JSON summary of a workflow run and its jobs to a file"

	[patch_command_usage]
	other = "Generate a unified-diff patch from CI failure logs"

	[patch_command_description]
	other = "Scans a captured log for known failure signatures (optionally asking a generative model first) and writes a unified-diff patch"

	[repo_flag_usage]
	other = "Repository in 'owner/name' format"

	[pr_flag_usage]
	other = "Pull request number"

	[message_flag_usage]
	other = "Comment body to post"

	[token_flag_usage]
	other = "GitHub token (optional, falls back to GH_TOKEN / GITHUB_TOKEN)"

	[run_id_flag_usage]
	other = "Workflow run id"

	[out_flag_usage]
	other = "Output file path"

	[logs_flag_usage]
	other = "Path to the captured CI log file"

	[repo_root_flag_usage]
	other = "Repository root the patch paths are relative to"

	[error_missing_token]
	other = "no GitHub token provided (use --token or set GH_TOKEN / GITHUB_TOKEN)"

	[invalid_repo_format]
	other = "repository must be in 'owner/name' format, got '{{.Repo}}'"

	[comment_posted]
	other = "Comment posted: {{.URL}}"

	[comment_post_failed]
	other = "Failed to post comment: {{.Error}}"

	[fetch_run_warning]
	other = "Warning: failed to fetch run info: {{.Error}}"

	[fetch_jobs_warning]
	other = "Warning: failed to fetch jobs: {{.Error}}"

	[summary_written]
	other = "Run summary written to {{.Path}}"

	[summary_write_failed]
	other = "failed to write summary to {{.Path}}: {{.Error}}"

	[logs_read_warning]
	other = "Warning: could not read log file {{.Path}}: {{.Error}}"

	[patch_written_ai]
	other = "Wrote patch from {{.Provider}} to {{.Path}}"

	[patch_written_heuristic]
	other = "Wrote heuristic patch to {{.Path}}"

	[patch_write_failed]
	other = "Warning: could not write patch to {{.Path}}: {{.Error}}"
`
