package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"kuispintar/internal/domain"
	"kuispintar/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for
// repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func curatedColumns() []string {
	return []string{"id", "level", "subject", "question_text", "options", "answer_text", "explanation", "image_url", "created_at", "updated_at", "deleted_at"}
}

func TestToDomainCuratedQuestion(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.CuratedQuestion{
		ID:           "cur-1",
		Level:        "SMP",
		Subject:      domain.SubjectIPS,
		QuestionText: "Apa ibu kota Indonesia?",
		Options:      models.StringSlice{"Jakarta", "Bandung", "Surabaya", "Medan"},
		AnswerText:   "Jakarta",
		Explanation:  sql.NullString{String: "Jakarta adalah ibu kota negara.", Valid: true},
		ImageURL:     sql.NullString{String: "https://cdn.example.com/jakarta.png", Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rec := toDomainCuratedQuestion(model)
	assert.Equal(t, "cur-1", rec.ID)
	assert.Equal(t, domain.LevelSMP, rec.Level)
	assert.Equal(t, domain.SubjectIPS, rec.Subject)
	assert.Equal(t, []string{"Jakarta", "Bandung", "Surabaya", "Medan"}, rec.Options)
	assert.Equal(t, "Jakarta", rec.AnswerText)
	assert.Equal(t, "Jakarta adalah ibu kota negara.", rec.Explanation)
	assert.Equal(t, "https://cdn.example.com/jakarta.png", rec.ImageURL)

	model.Explanation.Valid = false
	model.ImageURL.Valid = false
	rec = toDomainCuratedQuestion(model)
	assert.Equal(t, "", rec.Explanation)
	assert.Equal(t, "", rec.ImageURL)
}

func TestQueryActiveQuestions(t *testing.T) {
	sqlxDB, mock := setupTestDB(t)
	defer sqlxDB.Close()
	repo := NewCuratedQuestionDatabaseAdapter(sqlxDB)
	now := time.Now()

	rows := sqlmock.NewRows(curatedColumns()).
		AddRow("cur-1", "SMP", domain.SubjectMatematika, "Berapakah 7 x 8?", `["56","54","49","63"]`, "56", "7 x 8 = 56", nil, now, now, nil).
		AddRow("cur-2", "SMP", domain.SubjectMatematika, "Berapakah 12 + 9?", `["21","19","22","18"]`, "21", nil, nil, now, now, nil)

	mock.ExpectQuery(`(?s)SELECT .+ FROM curated_questions\s+WHERE level = \? AND subject = \? AND deleted_at IS NULL ORDER BY random\(\) LIMIT \?`).
		WithArgs("SMP", domain.SubjectMatematika, 5).
		WillReturnRows(rows)

	result, err := repo.QueryActiveQuestions(context.Background(), domain.LevelSMP, domain.SubjectMatematika, nil, 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "cur-1", result[0].ID)
	assert.Equal(t, []string{"56", "54", "49", "63"}, result[0].Options)
	assert.Equal(t, "", result[1].Explanation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryActiveQuestionsExpandsExclusionList(t *testing.T) {
	sqlxDB, mock := setupTestDB(t)
	defer sqlxDB.Close()
	repo := NewCuratedQuestionDatabaseAdapter(sqlxDB)

	mock.ExpectQuery(`(?s)SELECT .+ FROM curated_questions\s+WHERE level = \? AND subject = \? AND deleted_at IS NULL AND id NOT IN \(\?, \?\) ORDER BY random\(\) LIMIT \?`).
		WithArgs("SD", domain.SubjectIPA, "cur-seen", "sd-ipa-hewan:2", 3).
		WillReturnRows(sqlmock.NewRows(curatedColumns()))

	result, err := repo.QueryActiveQuestions(context.Background(), domain.LevelSD, domain.SubjectIPA, []string{"cur-seen", "sd-ipa-hewan:2"}, 3)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryActiveQuestionsBoundsExclusionParameters(t *testing.T) {
	sqlxDB, mock := setupTestDB(t)
	defer sqlxDB.Close()
	repo := NewCuratedQuestionDatabaseAdapter(sqlxDB)
	now := time.Now()

	excludeIDs := make([]string, maxQueryExcludeIDs+500)
	for i := range excludeIDs {
		excludeIDs[i] = fmt.Sprintf("seen-%05d", i)
	}

	// Only the first maxQueryExcludeIDs ids may reach the query as
	// bind parameters; the rest must be filtered on the rows.
	args := []driver.Value{"SMP", domain.SubjectIPS}
	for _, id := range excludeIDs[:maxQueryExcludeIDs] {
		args = append(args, id)
	}
	args = append(args, 4)

	rows := sqlmock.NewRows(curatedColumns()).
		AddRow(excludeIDs[maxQueryExcludeIDs+10], "SMP", domain.SubjectIPS, "Sudah pernah dilihat?", `["A","B","C","D"]`, "A", nil, nil, now, now, nil).
		AddRow("cur-fresh", "SMP", domain.SubjectIPS, "Ibu kota provinsi Banten adalah...", `["Serang","Tangerang","Cilegon","Depok"]`, "Serang", nil, nil, now, now, nil)

	mock.ExpectQuery(`(?s)FROM curated_questions\s+WHERE level = \? AND subject = \? AND deleted_at IS NULL AND id NOT IN \(`).
		WithArgs(args...).
		WillReturnRows(rows)

	result, err := repo.QueryActiveQuestions(context.Background(), domain.LevelSMP, domain.SubjectIPS, excludeIDs, 4)
	require.NoError(t, err)
	require.Len(t, result, 1, "rows matching the overflow exclusion ids must be dropped")
	assert.Equal(t, "cur-fresh", result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryActiveQuestionsPropagatesDBError(t *testing.T) {
	sqlxDB, mock := setupTestDB(t)
	defer sqlxDB.Close()
	repo := NewCuratedQuestionDatabaseAdapter(sqlxDB)

	mock.ExpectQuery(`FROM curated_questions`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.QueryActiveQuestions(context.Background(), domain.LevelSD, domain.SubjectMatematika, nil, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSaveQuestion(t *testing.T) {
	sqlxDB, mock := setupTestDB(t)
	defer sqlxDB.Close()
	repo := NewCuratedQuestionDatabaseAdapter(sqlxDB)

	mock.ExpectExec(`INSERT INTO curated_questions`).
		WithArgs("cur-9", "SD", domain.SubjectIPA, "Planet terdekat dari matahari?", `["Merkurius","Venus","Mars","Bumi"]`, "Merkurius", "Merkurius adalah planet terdekat.", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveQuestion(context.Background(), domain.CuratedQuestion{
		ID:           "cur-9",
		Level:        domain.LevelSD,
		Subject:      domain.SubjectIPA,
		QuestionText: "Planet terdekat dari matahari?",
		Options:      []string{"Merkurius", "Venus", "Mars", "Bumi"},
		AnswerText:   "Merkurius",
		Explanation:  "Merkurius adalah planet terdekat.",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
