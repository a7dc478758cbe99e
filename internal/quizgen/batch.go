package quizgen

import (
	"fmt"
	"time"

	"kuispintar/internal/domain"
)

// attemptsPerQuestion bounds the retry budget of a batch: a batch of
// count questions gets count*attemptsPerQuestion generation attempts
// before the exhaustion fallback kicks in.
const attemptsPerQuestion = 50

// BatchResult is the outcome of a batch generation: exactly the
// requested number of questions, plus a mastery signal when the unique
// content for the pair ran out relative to the exclusion set.
type BatchResult struct {
	Questions      []domain.Question
	MasteryReached bool
}

// Batch generates count questions whose signatures are neither in
// excluded nor duplicated within the batch. The retry budget bounds
// worst-case latency; when it is exhausted the remainder is force
// filled with fresh questions whose signatures get a time-based
// uniqueness suffix, deliberately bypassing dedup so the batch always
// reaches exactly count items.
func (g *Generator) Batch(level domain.Level, subject string, count int, excluded map[string]struct{}) BatchResult {
	seen := make(map[string]struct{}, len(excluded)+count)
	for sig := range excluded {
		seen[sig] = struct{}{}
	}

	questions := make([]domain.Question, 0, count)
	budget := count * attemptsPerQuestion
	for len(questions) < count && budget > 0 {
		budget--
		q := g.Question(level, subject)
		if _, dup := seen[q.Signature]; dup {
			continue
		}
		seen[q.Signature] = struct{}{}
		questions = append(questions, q)
	}

	result := BatchResult{Questions: questions}
	if len(questions) < count {
		// Content exhaustion: true novelty is unavailable, so filler
		// questions repeat content under a unique signature.
		result.MasteryReached = true
		for len(result.Questions) < count {
			q := g.Question(level, subject)
			q.Signature = fmt.Sprintf("%s~%d", q.Signature, time.Now().UnixNano())
			result.Questions = append(result.Questions, q)
		}
	}
	return result
}
