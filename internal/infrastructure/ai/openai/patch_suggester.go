package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/registry"
	openai "github.com/sashabaranov/go-openai"
)

var _ ports.PatchSuggester = (*PatchSuggester)(nil)

type ChatCompletionService interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type PatchSuggester struct {
	chatService ChatCompletionService
	model       string
	maxTokens   int
}

func NewPatchSuggester(apiKey, model string, maxTokens int) (*PatchSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: falta la API key")
	}

	return &PatchSuggester{
		chatService: openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
	}, nil
}

func NewPatchSuggesterWithService(chatService ChatCompletionService, model string, maxTokens int) *PatchSuggester {
	return &PatchSuggester{
		chatService: chatService,
		model:       model,
		maxTokens:   maxTokens,
	}
}

// NewSuggesterFactory crea la factory que lee OPENAI_API_KEY del entorno.
func NewSuggesterFactory() registry.ProviderFactory {
	return func(_ context.Context, cfg *config.Config) (ports.PatchSuggester, error) {
		return NewPatchSuggester(os.Getenv("OPENAI_API_KEY"), cfg.AIConfig.OpenAIModel, cfg.AIConfig.MaxTokens)
	}
}

// SuggestPatch pide al modelo un parche unified-diff para el log dado.
func (s *PatchSuggester) SuggestPatch(ctx context.Context, logs string) (string, error) {
	resp, err := s.chatService.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: ai.BuildPatchPrompt(logs),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GetProviderName implementa ports.PatchSuggester
func (s *PatchSuggester) GetProviderName() string {
	return "openai"
}
