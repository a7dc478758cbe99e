package domain

import "time"

// AnswerHistoryEntry is the append-only per-user record of an answered
// question. The engine reads these to exclude previously seen
// signatures from new sessions; it never mutates existing entries.
type AnswerHistoryEntry struct {
	UserID            string
	Subject           string
	QuestionSignature string
	IsCorrect         bool
	AnsweredAt        time.Time
}

// NewAnswerHistoryEntry creates a new AnswerHistoryEntry stamped with
// the current time.
func NewAnswerHistoryEntry(userID, subject, signature string, isCorrect bool) *AnswerHistoryEntry {
	return &AnswerHistoryEntry{
		UserID:            userID,
		Subject:           subject,
		QuestionSignature: signature,
		IsCorrect:         isCorrect,
		AnsweredAt:        time.Now(),
	}
}

// Validate validates the history entry
func (e *AnswerHistoryEntry) Validate() error {
	if e.UserID == "" {
		return NewMissingFieldError("user_id")
	}
	if e.Subject == "" {
		return NewMissingFieldError("subject")
	}
	if e.QuestionSignature == "" {
		return NewMissingFieldError("question_signature")
	}
	return nil
}

// UserStreak tracks consecutive correct answers for a user
type UserStreak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}
