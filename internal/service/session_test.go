package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kuispintar/internal/domain"
	"kuispintar/internal/quizgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// exhaustibleSubject is registered with three unique signatures so
// tests can drive the engine into content exhaustion.
const exhaustibleSubject = "Materi Sempit"

func init() {
	quizgen.Register(domain.LevelSMP, exhaustibleSubject, []quizgen.Template{
		{
			Name: "materi-sempit",
			Generate: func(r quizgen.Rand) quizgen.TemplateResult {
				i := r.Intn(3)
				return quizgen.TemplateResult{
					Text:          fmt.Sprintf("Pertanyaan nomor %d?", i),
					Explanation:   "Penjelasan singkat.",
					SignatureBase: fmt.Sprintf("materi-sempit:%d", i),
					Answer:        fmt.Sprintf("Jawaban %d", i),
					Distractors:   [3]string{"Salah A", "Salah B", "Salah C"},
				}
			},
		},
	})
}

func newTestSessionService(history *MockHistoryRepository, curated *MockCuratedQuestionRepository) SessionService {
	rng := quizgen.NewLockedRand(42)
	return NewSessionService(history, curated, quizgen.NewGenerator(rng), rng, 10, 50)
}

func curatedRow(id, subject, question, answer string) domain.CuratedQuestion {
	return domain.CuratedQuestion{
		ID:           id,
		Level:        domain.LevelSMP,
		Subject:      subject,
		QuestionText: question,
		Options:      []string{answer, "Salah satu", "Salah dua", "Salah tiga"},
		AnswerText:   answer,
		Explanation:  "Penjelasan kurasi.",
		ImageURL:     "https://cdn.example.com/" + id + ".png",
	}
}

func TestFetchSessionReturnsExactCount(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSD, domain.SubjectMatematika, mock.Anything, 10).
		Return([]domain.CuratedQuestion{}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSD, domain.SubjectMatematika, 10, "user-1")

	require.NoError(t, err)
	assert.Len(t, sess.Questions, 10)
	assert.False(t, sess.MasteryReached)
	for _, q := range sess.Questions {
		assert.NoError(t, q.Validate())
	}
}

func TestFetchSessionMixesCuratedAndGenerated(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSMP, domain.SubjectMatematika, mock.Anything, 5).
		Return([]domain.CuratedQuestion{
			curatedRow("cur-1", domain.SubjectMatematika, "Berapakah 2 + 2?", "4"),
			curatedRow("cur-2", domain.SubjectMatematika, "Berapakah 3 x 3?", "9"),
		}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSMP, domain.SubjectMatematika, 5, "user-1")

	require.NoError(t, err)
	require.Len(t, sess.Questions, 5)
	assert.False(t, sess.MasteryReached)

	curatedCount := 0
	for _, q := range sess.Questions {
		if q.ImageURL != "" {
			curatedCount++
		}
	}
	assert.Equal(t, 2, curatedCount, "expected both curated rows in the session")
}

func TestFetchSessionSurvivesCuratedStoreFailure(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSMP, domain.SubjectIPA, mock.Anything, 6).
		Return(nil, errors.New("connection refused"))

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSMP, domain.SubjectIPA, 6, "user-1")

	require.NoError(t, err)
	require.Len(t, sess.Questions, 6)
	for _, q := range sess.Questions {
		assert.Empty(t, q.ImageURL, "a failed store must yield a purely generated session")
	}
}

func TestFetchSessionSurvivesHistoryFailure(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return(nil, errors.New("timeout"))
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSD, domain.SubjectIPA, mock.Anything, 4).
		Return([]domain.CuratedQuestion{}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSD, domain.SubjectIPA, 4, "user-1")

	require.NoError(t, err)
	assert.Len(t, sess.Questions, 4)
}

func TestFetchSessionExcludesHistorySignatures(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{
		{UserID: "user-1", Subject: exhaustibleSubject, QuestionSignature: "materi-sempit:0", IsCorrect: true},
		{UserID: "user-1", Subject: domain.SubjectIPS, QuestionSignature: "cur-seen", IsCorrect: false},
	}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSMP, exhaustibleSubject,
		mock.MatchedBy(func(excludeIDs []string) bool {
			return len(excludeIDs) == 2
		}), 2).
		Return([]domain.CuratedQuestion{}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSMP, exhaustibleSubject, 2, "user-1")

	require.NoError(t, err)
	require.Len(t, sess.Questions, 2)
	for _, q := range sess.Questions {
		assert.NotEqual(t, "materi-sempit:0", q.Signature)
	}
	curated.AssertExpectations(t)
}

func TestFetchSessionSignalsMasteryOnExhaustion(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{
		{UserID: "user-1", Subject: exhaustibleSubject, QuestionSignature: "materi-sempit:0", IsCorrect: true},
		{UserID: "user-1", Subject: exhaustibleSubject, QuestionSignature: "materi-sempit:1", IsCorrect: true},
		{UserID: "user-1", Subject: exhaustibleSubject, QuestionSignature: "materi-sempit:2", IsCorrect: true},
	}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSMP, exhaustibleSubject, mock.Anything, 5).
		Return([]domain.CuratedQuestion{}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSMP, exhaustibleSubject, 5, "user-1")

	require.NoError(t, err)
	assert.Len(t, sess.Questions, 5, "exhaustion must not shrink the session")
	assert.True(t, sess.MasteryReached)
}

func TestFetchSessionSkipsMalformedCuratedRows(t *testing.T) {
	bad := curatedRow("cur-bad", domain.SubjectIPS, "Pertanyaan rusak?", "A")
	bad.Options = []string{"A", "B"}

	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSMP, domain.SubjectIPS, mock.Anything, 3).
		Return([]domain.CuratedQuestion{bad, curatedRow("cur-ok", domain.SubjectIPS, "Ibu kota Indonesia?", "Jakarta")}, nil)

	svc := newTestSessionService(history, curated)
	sess, err := svc.FetchSession(context.Background(), domain.LevelSMP, domain.SubjectIPS, 3, "user-1")

	require.NoError(t, err)
	require.Len(t, sess.Questions, 3)
	for _, q := range sess.Questions {
		assert.NotEqual(t, "cur-bad", q.Signature)
		assert.NoError(t, q.Validate())
	}
}

func TestFetchSessionClampsCount(t *testing.T) {
	history := new(MockHistoryRepository)
	curated := new(MockCuratedQuestionRepository)
	history.On("FetchHistory", mock.Anything, "user-1").Return([]domain.AnswerHistoryEntry{}, nil)
	curated.On("QueryActiveQuestions", mock.Anything, domain.LevelSD, domain.SubjectMatematika, mock.Anything, mock.Anything).
		Return([]domain.CuratedQuestion{}, nil)

	svc := newTestSessionService(history, curated)

	sess, err := svc.FetchSession(context.Background(), domain.LevelSD, domain.SubjectMatematika, 0, "user-1")
	require.NoError(t, err)
	assert.Len(t, sess.Questions, 10, "zero count falls back to the default")

	sess, err = svc.FetchSession(context.Background(), domain.LevelSD, domain.SubjectMatematika, 500, "user-1")
	require.NoError(t, err)
	assert.Len(t, sess.Questions, 50, "oversized count clamps to the maximum")
}
