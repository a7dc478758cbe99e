package domain

import "context"

// CuratedQuestion is the raw record shape of the external curated
// store, before mapping into a Question. Curated records carry an
// image URL and never a drawing instruction.
type CuratedQuestion struct {
	ID           string
	Level        Level
	Subject      string
	QuestionText string
	Options      []string
	AnswerText   string
	Explanation  string
	ImageURL     string
}

// CuratedQuestionRepository is the port to the curated question store.
// The engine only reads through it.
type CuratedQuestionRepository interface {
	// QueryActiveQuestions returns up to limit active (non-deleted)
	// questions for the level/subject pair whose ids are not in
	// excludeIDs. The exclusion list may be empty and may contain
	// generator-only signatures, which simply never match.
	QueryActiveQuestions(ctx context.Context, level Level, subject string, excludeIDs []string, limit int) ([]CuratedQuestion, error)
}

// HistoryRepository is the port to the answer history store. Reads
// must return the user's complete history so a session can exclude
// every signature ever seen.
type HistoryRepository interface {
	FetchHistory(ctx context.Context, userID string) ([]AnswerHistoryEntry, error)
	SaveEntry(ctx context.Context, entry *AnswerHistoryEntry) error
}
