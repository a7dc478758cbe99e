package service

import (
	"context"

	"kuispintar/internal/domain"
	"kuispintar/internal/logger"
	"kuispintar/internal/quizgen"

	"go.uber.org/zap"
)

// SessionService builds hybrid quiz sessions from curated and
// procedurally generated questions.
type SessionService interface {
	// FetchSession returns exactly count questions for the
	// level/subject pair, excluding everything the user has already
	// seen, with curated and generated items interleaved.
	FetchSession(ctx context.Context, level domain.Level, subject string, count int, userID string) (*domain.QuizSession, error)
}

type sessionService struct {
	history      domain.HistoryRepository
	curated      domain.CuratedQuestionRepository
	gen          *quizgen.Generator
	rng          quizgen.Rand
	defaultCount int
	maxCount     int
}

// NewSessionService creates a new SessionService. The generator and
// rng are shared across calls; both are safe for concurrent use.
func NewSessionService(
	history domain.HistoryRepository,
	curated domain.CuratedQuestionRepository,
	gen *quizgen.Generator,
	rng quizgen.Rand,
	defaultCount, maxCount int,
) SessionService {
	return &sessionService{
		history:      history,
		curated:      curated,
		gen:          gen,
		rng:          rng,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

// FetchSession implements SessionService.
//
// The dominant failure philosophy: content delivery never fails
// because a store is down. History and curated query errors degrade
// the session towards pure procedural content; a panic anywhere in the
// pipeline degrades to a procedural batch with no exclusions. The only
// way to get no session at all is to have no templates, and the
// default catalog guarantees there always are some.
func (s *sessionService) FetchSession(ctx context.Context, level domain.Level, subject string, count int, userID string) (sess *domain.QuizSession, err error) {
	count = s.clampCount(count)

	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("session build panicked, serving procedural fallback",
				zap.Any("panic", r),
				zap.String("user_id", userID),
				zap.String("level", string(level)),
				zap.String("subject", subject))
			res := s.gen.Batch(level, subject, count, nil)
			quizgen.ShuffleQuestions(s.rng, res.Questions)
			sess = &domain.QuizSession{Questions: res.Questions, MasteryReached: res.MasteryReached}
			err = nil
		}
	}()

	// 1. Full answer history across all subjects: curated ids live in
	// one global id space, so cross-subject signatures must be
	// excluded too.
	usedSignatures := make(map[string]struct{})
	entries, histErr := s.history.FetchHistory(ctx, userID)
	if histErr != nil {
		logger.Get().Warn("history fetch failed, session dedup degraded",
			zap.Error(histErr),
			zap.String("user_id", userID))
	} else {
		for _, e := range entries {
			usedSignatures[e.QuestionSignature] = struct{}{}
		}
	}

	// 2. Curated questions the user has not seen. The exclusion list
	// is the full signature superset; generator-only signatures simply
	// never match a store id. Failures here are non-fatal.
	excludeIDs := make([]string, 0, len(usedSignatures))
	for sig := range usedSignatures {
		excludeIDs = append(excludeIDs, sig)
	}
	records, curErr := s.curated.QueryActiveQuestions(ctx, level, subject, excludeIDs, count)
	if curErr != nil {
		logger.Get().Warn("curated store unavailable, serving procedural-only session",
			zap.Error(curErr),
			zap.String("level", string(level)),
			zap.String("subject", subject))
		records = nil
	}

	// 3. Map curated rows, dropping anything that breaks the question
	// invariants (a store row with the wrong option count must not
	// take down the session).
	curatedQuestions := make([]domain.Question, 0, len(records))
	for _, rec := range records {
		q := quizgen.FromCuratedRecord(rec)
		if vErr := q.Validate(); vErr != nil {
			logger.Get().Warn("skipping malformed curated question",
				zap.Error(vErr),
				zap.String("curated_id", rec.ID))
			continue
		}
		curatedQuestions = append(curatedQuestions, q)
	}

	// 4-5. Top up with generated questions, excluding both history and
	// the curated items just selected for this session.
	masteryReached := false
	questions := curatedQuestions
	if remaining := count - len(curatedQuestions); remaining > 0 {
		for _, q := range curatedQuestions {
			usedSignatures[q.Signature] = struct{}{}
		}
		res := s.gen.Batch(level, subject, remaining, usedSignatures)
		masteryReached = res.MasteryReached
		questions = append(questions, res.Questions...)
	}

	// 6. Interleave curated and generated items unpredictably.
	quizgen.ShuffleQuestions(s.rng, questions)

	return &domain.QuizSession{Questions: questions, MasteryReached: masteryReached}, nil
}

func (s *sessionService) clampCount(count int) int {
	if count <= 0 {
		return s.defaultCount
	}
	if count > s.maxCount {
		return s.maxCount
	}
	return count
}
