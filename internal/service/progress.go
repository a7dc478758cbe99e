package service

import (
	"context"
	"encoding/json"
	"time"

	"kuispintar/internal/cache"
	"kuispintar/internal/domain"
	"kuispintar/internal/logger"

	"go.uber.org/zap"
)

// ProgressService records answered questions and tracks per-user
// answer streaks. The history write is the source of truth; the
// streak lives in the cache and is best-effort.
type ProgressService interface {
	RecordAnswer(ctx context.Context, entry *domain.AnswerHistoryEntry) (*domain.UserStreak, error)
	GetStreak(ctx context.Context, userID string) (*domain.UserStreak, error)
}

type progressService struct {
	history   domain.HistoryRepository
	cache     domain.Cache
	streakTTL time.Duration
}

// NewProgressService creates a new ProgressService. cache may be nil,
// in which case streaks reset on every call but answers still record.
func NewProgressService(history domain.HistoryRepository, cacheClient domain.Cache, streakTTL time.Duration) ProgressService {
	return &progressService{
		history:   history,
		cache:     cacheClient,
		streakTTL: streakTTL,
	}
}

// RecordAnswer appends the history entry and updates the streak. A
// correct answer extends the current streak; an incorrect one resets
// it to zero. Cache failures are logged, never surfaced.
func (s *progressService) RecordAnswer(ctx context.Context, entry *domain.AnswerHistoryEntry) (*domain.UserStreak, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.AnsweredAt.IsZero() {
		entry.AnsweredAt = time.Now()
	}

	if err := s.history.SaveEntry(ctx, entry); err != nil {
		return nil, domain.NewInternalError("failed to save answer history", err)
	}

	streak := s.loadStreak(ctx, entry.UserID)
	if entry.IsCorrect {
		streak.Current++
		if streak.Current > streak.Best {
			streak.Best = streak.Current
		}
	} else {
		streak.Current = 0
	}
	s.storeStreak(ctx, entry.UserID, streak)

	return streak, nil
}

// GetStreak returns the user's cached streak, zero-valued on a miss.
func (s *progressService) GetStreak(ctx context.Context, userID string) (*domain.UserStreak, error) {
	if userID == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}
	return s.loadStreak(ctx, userID), nil
}

func (s *progressService) loadStreak(ctx context.Context, userID string) *domain.UserStreak {
	streak := &domain.UserStreak{}
	if s.cache == nil {
		return streak
	}

	raw, err := s.cache.Get(ctx, streakCacheKey(userID))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("failed to load streak from cache",
				zap.Error(err),
				zap.String("user_id", userID))
		}
		return streak
	}
	if err := json.Unmarshal([]byte(raw), streak); err != nil {
		logger.Get().Warn("corrupt streak cache entry, resetting",
			zap.Error(err),
			zap.String("user_id", userID))
		return &domain.UserStreak{}
	}
	return streak
}

func (s *progressService) storeStreak(ctx context.Context, userID string, streak *domain.UserStreak) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(streak)
	if err != nil {
		logger.Get().Error("failed to marshal streak", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, streakCacheKey(userID), string(raw), s.streakTTL); err != nil {
		logger.Get().Warn("failed to store streak in cache",
			zap.Error(err),
			zap.String("user_id", userID))
	}
}

func streakCacheKey(userID string) string {
	return cache.GenerateCacheKey("progress", "streak", userID)
}
