package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kuispintar/internal/domain"
	"kuispintar/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CuratedQuestionDatabaseAdapter implements
// domain.CuratedQuestionRepository using sqlx over Postgres.
type CuratedQuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCuratedQuestionDatabaseAdapter creates a new instance of
// CuratedQuestionDatabaseAdapter.
func NewCuratedQuestionDatabaseAdapter(db *sqlx.DB) *CuratedQuestionDatabaseAdapter {
	return &CuratedQuestionDatabaseAdapter{db: db}
}

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func toDomainCuratedQuestion(m *models.CuratedQuestion) domain.CuratedQuestion {
	return domain.CuratedQuestion{
		ID:           m.ID,
		Level:        domain.Level(m.Level),
		Subject:      m.Subject,
		QuestionText: m.QuestionText,
		Options:      m.Options,
		AnswerText:   m.AnswerText,
		Explanation:  nullString(m.Explanation),
		ImageURL:     nullString(m.ImageURL),
	}
}

// maxQueryExcludeIDs caps how many exclusion ids are bound into the
// NOT IN clause. Postgres rejects statements with more than 65535 bind
// parameters, so a heavy user's full history cannot all go into SQL;
// the overflow is filtered on the mapped rows instead.
const maxQueryExcludeIDs = 1000

// QueryActiveQuestions implements domain.CuratedQuestionRepository.
// Soft-deleted rows are excluded; excludeIDs may be empty and may
// contain non-store signatures, which never match. Exclusion lists
// longer than maxQueryExcludeIDs are split: the first chunk is pushed
// into the query, the remainder is applied client-side, so no history
// size can make the query itself fail.
func (a *CuratedQuestionDatabaseAdapter) QueryActiveQuestions(ctx context.Context, level domain.Level, subject string, excludeIDs []string, limit int) ([]domain.CuratedQuestion, error) {
	queryExclude := excludeIDs
	var overflow map[string]struct{}
	if len(excludeIDs) > maxQueryExcludeIDs {
		queryExclude = excludeIDs[:maxQueryExcludeIDs]
		overflow = make(map[string]struct{}, len(excludeIDs)-maxQueryExcludeIDs)
		for _, id := range excludeIDs[maxQueryExcludeIDs:] {
			overflow[id] = struct{}{}
		}
	}

	query := `SELECT id, level, subject, question_text, options, answer_text, explanation, image_url, created_at, updated_at, deleted_at
	FROM curated_questions
	WHERE level = ? AND subject = ? AND deleted_at IS NULL`
	args := []interface{}{string(level), subject}

	if len(queryExclude) > 0 {
		query += " AND id NOT IN (?)"
		args = append(args, queryExclude)
	}
	query += " ORDER BY random() LIMIT ?"
	args = append(args, limit)

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build curated questions query: %w", err)
	}
	query = a.db.Rebind(query)

	var rows []models.CuratedQuestion
	if err := a.db.SelectContext(ctx, &rows, query, inArgs...); err != nil {
		return nil, fmt.Errorf("failed to query active curated questions: %w", err)
	}

	result := make([]domain.CuratedQuestion, 0, len(rows))
	for i := range rows {
		if _, seen := overflow[rows[i].ID]; seen {
			continue
		}
		result = append(result, toDomainCuratedQuestion(&rows[i]))
	}
	return result, nil
}

// SaveQuestion inserts a curated question. It is used by the seeding
// tooling, not by the engine, which only reads.
func (a *CuratedQuestionDatabaseAdapter) SaveQuestion(ctx context.Context, rec domain.CuratedQuestion) error {
	now := time.Now()
	optionsVal, err := models.StringSlice(rec.Options).Value()
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	query := a.db.Rebind(`INSERT INTO curated_questions
	(id, level, subject, question_text, options, answer_text, explanation, image_url, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = a.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Level),
		rec.Subject,
		rec.QuestionText,
		optionsVal,
		rec.AnswerText,
		rec.Explanation,
		rec.ImageURL,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert curated question %s: %w", rec.ID, err)
	}
	return nil
}
