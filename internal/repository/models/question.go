package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON-encoded text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// CuratedQuestion is the row shape of the curated_questions table.
// Rows with a non-null deleted_at are considered inactive.
type CuratedQuestion struct {
	ID           string         `db:"id"`
	Level        string         `db:"level"`
	Subject      string         `db:"subject"`
	QuestionText string         `db:"question_text"`
	Options      StringSlice    `db:"options"`
	AnswerText   string         `db:"answer_text"`
	Explanation  sql.NullString `db:"explanation"`
	ImageURL     sql.NullString `db:"image_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    sql.NullTime   `db:"deleted_at"`
}

// AnswerHistory is the row shape of the answer_history table. Rows are
// append-only: inserted once per answered question, never updated.
type AnswerHistory struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	Subject           string    `db:"subject"`
	QuestionSignature string    `db:"question_signature"`
	IsCorrect         bool      `db:"is_correct"`
	AnsweredAt        time.Time `db:"answered_at"`
	CreatedAt         time.Time `db:"created_at"`
}
