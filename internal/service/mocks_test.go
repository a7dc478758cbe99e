package service

import (
	"context"
	"time"

	"kuispintar/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FetchHistory(ctx context.Context, userID string) ([]domain.AnswerHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerHistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) SaveEntry(ctx context.Context, entry *domain.AnswerHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- MockCuratedQuestionRepository ---
type MockCuratedQuestionRepository struct {
	mock.Mock
}

func (m *MockCuratedQuestionRepository) QueryActiveQuestions(ctx context.Context, level domain.Level, subject string, excludeIDs []string, limit int) ([]domain.CuratedQuestion, error) {
	args := m.Called(ctx, level, subject, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CuratedQuestion), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
