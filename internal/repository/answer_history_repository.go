package repository

import (
	"context"
	"fmt"
	"time"

	"kuispintar/internal/domain"
	"kuispintar/internal/repository/models"
	"kuispintar/internal/util"

	"github.com/jmoiron/sqlx"
)

// AnswerHistoryDatabaseAdapter implements domain.HistoryRepository
// using sqlx over Postgres. The table is append-only.
type AnswerHistoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAnswerHistoryDatabaseAdapter creates a new instance of
// AnswerHistoryDatabaseAdapter.
func NewAnswerHistoryDatabaseAdapter(db *sqlx.DB) *AnswerHistoryDatabaseAdapter {
	return &AnswerHistoryDatabaseAdapter{db: db}
}

func toDomainHistoryEntry(m *models.AnswerHistory) domain.AnswerHistoryEntry {
	return domain.AnswerHistoryEntry{
		UserID:            m.UserID,
		Subject:           m.Subject,
		QuestionSignature: m.QuestionSignature,
		IsCorrect:         m.IsCorrect,
		AnsweredAt:        m.AnsweredAt,
	}
}

// FetchHistory implements domain.HistoryRepository. It returns the
// user's complete history; session dedup depends on nothing being
// left out.
func (a *AnswerHistoryDatabaseAdapter) FetchHistory(ctx context.Context, userID string) ([]domain.AnswerHistoryEntry, error) {
	query := a.db.Rebind(`SELECT id, user_id, subject, question_signature, is_correct, answered_at, created_at
	FROM answer_history
	WHERE user_id = ?
	ORDER BY answered_at DESC`)

	var rows []models.AnswerHistory
	if err := a.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch answer history for user %s: %w", userID, err)
	}

	entries := make([]domain.AnswerHistoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toDomainHistoryEntry(&rows[i]))
	}
	return entries, nil
}

// SaveEntry implements domain.HistoryRepository
func (a *AnswerHistoryDatabaseAdapter) SaveEntry(ctx context.Context, entry *domain.AnswerHistoryEntry) error {
	if entry.AnsweredAt.IsZero() {
		entry.AnsweredAt = time.Now()
	}

	query := a.db.Rebind(`INSERT INTO answer_history
	(id, user_id, subject, question_signature, is_correct, answered_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`)

	_, err := a.db.ExecContext(ctx, query,
		util.NewULID(),
		entry.UserID,
		entry.Subject,
		entry.QuestionSignature,
		entry.IsCorrect,
		entry.AnsweredAt,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save answer history entry: %w", err)
	}
	return nil
}
