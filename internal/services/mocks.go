package services

import (
	"context"

	"github.com/Tomas-vilte/FixBot/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) CreateComment(ctx context.Context, prNumber int, body string) (models.Comment, error) {
	args := m.Called(ctx, prNumber, body)
	return args.Get(0).(models.Comment), args.Error(1)
}

type MockActionsReader struct {
	mock.Mock
}

func (m *MockActionsReader) GetWorkflowRun(ctx context.Context, runID string) ([]byte, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockActionsReader) ListWorkflowJobs(ctx context.Context, runID string) ([]byte, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockPatchSuggester struct {
	mock.Mock
}

func (m *MockPatchSuggester) SuggestPatch(ctx context.Context, logs string) (string, error) {
	args := m.Called(ctx, logs)
	return args.String(0), args.Error(1)
}

func (m *MockPatchSuggester) GetProviderName() string {
	args := m.Called()
	return args.String(0)
}
