package gemini

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/registry"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.PatchSuggester = (*PatchSuggester)(nil)

type PatchSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewPatchSuggester(ctx context.Context, apiKey, modelName string, maxTokens int) (*PatchSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: falta la API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &PatchSuggester{
		client: client,
		model:  model,
	}, nil
}

// NewSuggesterFactory crea la factory que lee GEMINI_API_KEY del entorno.
func NewSuggesterFactory() registry.ProviderFactory {
	return func(ctx context.Context, cfg *config.Config) (ports.PatchSuggester, error) {
		return NewPatchSuggester(ctx, os.Getenv("GEMINI_API_KEY"), cfg.AIConfig.GeminiModel, cfg.AIConfig.MaxTokens)
	}
}

// SuggestPatch pide al modelo un parche unified-diff para el log dado.
func (s *PatchSuggester) SuggestPatch(ctx context.Context, logs string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(ai.BuildPatchPrompt(logs)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	return extractText(resp), nil
}

// GetProviderName implementa ports.PatchSuggester
func (s *PatchSuggester) GetProviderName() string {
	return "gemini"
}
