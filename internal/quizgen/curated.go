package quizgen

import (
	"strings"

	"kuispintar/internal/domain"
	"kuispintar/internal/util"
)

// FromCuratedRecord maps a curated store record into the Question
// shape used by the generator, so curated and generated content mix
// seamlessly in one session. The signature is the store id, which is
// what makes curated dedup by history possible.
//
// The correct index is found by trimmed, case-insensitive comparison
// of the answer text against the options. A record whose answer
// matches no option is a data-entry problem for curator tooling, not a
// runtime failure: it defaults to index 0.
func FromCuratedRecord(rec domain.CuratedQuestion) domain.Question {
	correctIndex := 0
	want := strings.TrimSpace(rec.AnswerText)
	for i, opt := range rec.Options {
		if strings.EqualFold(strings.TrimSpace(opt), want) {
			correctIndex = i
			break
		}
	}

	return domain.Question{
		ID:           util.NewULID(),
		Signature:    rec.ID,
		Level:        rec.Level,
		Subject:      rec.Subject,
		QuestionText: rec.QuestionText,
		Options:      rec.Options,
		CorrectIndex: correctIndex,
		Explanation:  rec.Explanation,
		ImageURL:     rec.ImageURL,
	}
}
