package openai

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatCompletionService struct {
	mock.Mock
}

func (m *MockChatCompletionService) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestNewPatchSuggester(t *testing.T) {
	t.Run("should fail without an API key", func(t *testing.T) {
		_, err := NewPatchSuggester("", "gpt-4o-mini", 800)
		assert.Error(t, err)
	})

	t.Run("should build with an API key", func(t *testing.T) {
		suggester, err := NewPatchSuggester("sk-test", "gpt-4o-mini", 800)
		require.NoError(t, err)
		assert.Equal(t, "openai", suggester.GetProviderName())
	})
}

func TestPatchSuggester_SuggestPatch(t *testing.T) {
	t.Run("should send the log inside the fixed prompt with the configured model", func(t *testing.T) {
		mockChat := &MockChatCompletionService{}
		suggester := NewPatchSuggesterWithService(mockChat, "gpt-4o-mini", 800)

		mockChat.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
			return req.Model == "gpt-4o-mini" &&
				req.MaxTokens == 800 &&
				len(req.Messages) == 1 &&
				strings.Contains(req.Messages[0].Content, "ImportError: No module named foo")
		})).Return(chatResponse("--- a/x\n+++ b/x\n"), nil)

		patch, err := suggester.SuggestPatch(context.Background(), "ImportError: No module named foo")

		require.NoError(t, err)
		assert.Equal(t, "--- a/x\n+++ b/x", patch)
		mockChat.AssertExpectations(t)
	})

	t.Run("should return empty without error when there are no choices", func(t *testing.T) {
		mockChat := &MockChatCompletionService{}
		suggester := NewPatchSuggesterWithService(mockChat, "gpt-4o-mini", 800)

		mockChat.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, nil)

		patch, err := suggester.SuggestPatch(context.Background(), "logs")

		require.NoError(t, err)
		assert.Empty(t, patch)
	})

	t.Run("should wrap transport errors", func(t *testing.T) {
		mockChat := &MockChatCompletionService{}
		suggester := NewPatchSuggesterWithService(mockChat, "gpt-4o-mini", 800)

		mockChat.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, errors.New("timeout"))

		_, err := suggester.SuggestPatch(context.Background(), "logs")

		assert.ErrorContains(t, err, "openai")
	})
}
