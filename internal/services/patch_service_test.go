package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPatchService_GeneratePatch(t *testing.T) {
	aiPatch := "--- a/main.py\n+++ b/main.py\n@@ -1 +1 @@\n-import foo\n+import bar\n"

	t.Run("should write the first non empty suggestion verbatim", func(t *testing.T) {
		suggester := &MockPatchSuggester{}
		suggester.On("SuggestPatch", mock.Anything, "logs").Return(aiPatch, nil)
		suggester.On("GetProviderName").Return("openai")

		service := NewPatchService([]ports.PatchSuggester{suggester}, patch.NewGenerator(t.TempDir()))
		outPath := filepath.Join(t.TempDir(), "fix.patch")

		provider, err := service.GeneratePatch(context.Background(), "logs", outPath)

		require.NoError(t, err)
		assert.Equal(t, "openai", provider)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, aiPatch, string(data))
	})

	t.Run("should swallow suggester errors and try the next provider", func(t *testing.T) {
		failing := &MockPatchSuggester{}
		failing.On("SuggestPatch", mock.Anything, "logs").Return("", errors.New("rate limited"))

		working := &MockPatchSuggester{}
		working.On("SuggestPatch", mock.Anything, "logs").Return(aiPatch, nil)
		working.On("GetProviderName").Return("gemini")

		service := NewPatchService([]ports.PatchSuggester{failing, working}, patch.NewGenerator(t.TempDir()))
		outPath := filepath.Join(t.TempDir(), "fix.patch")

		provider, err := service.GeneratePatch(context.Background(), "logs", outPath)

		require.NoError(t, err)
		assert.Equal(t, "gemini", provider)
		failing.AssertExpectations(t)
	})

	t.Run("should fall back to heuristics when every suggestion is empty", func(t *testing.T) {
		suggester := &MockPatchSuggester{}
		suggester.On("SuggestPatch", mock.Anything, mock.Anything).Return("", nil)

		service := NewPatchService([]ports.PatchSuggester{suggester}, patch.NewGenerator(t.TempDir()))
		outPath := filepath.Join(t.TempDir(), "fix.patch")

		logs := "ModuleNotFoundError: No module named 'foo'\n"
		provider, err := service.GeneratePatch(context.Background(), logs, outPath)

		require.NoError(t, err)
		assert.Empty(t, provider)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "+++ b/requirements.txt\n")
		assert.Contains(t, string(data), "+foo\n")
	})

	t.Run("should emit the notice patch without any suggester", func(t *testing.T) {
		service := NewPatchService(nil, patch.NewGenerator(t.TempDir()))
		outPath := filepath.Join(t.TempDir(), "fix.patch")

		provider, err := service.GeneratePatch(context.Background(), "nothing recognizable", outPath)

		require.NoError(t, err)
		assert.Empty(t, provider)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "+++ b/.fixbot_notice.txt\n")
	})

	t.Run("should overwrite the previous patch at generation start", func(t *testing.T) {
		service := NewPatchService(nil, patch.NewGenerator(t.TempDir()))
		outPath := filepath.Join(t.TempDir(), "fix.patch")
		require.NoError(t, os.WriteFile(outPath, []byte("contenido viejo"), 0644))

		_, err := service.GeneratePatch(context.Background(), "nothing recognizable", outPath)

		require.NoError(t, err)
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "contenido viejo")
	})
}
