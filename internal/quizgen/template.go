package quizgen

import (
	"fmt"
	"sync"

	"kuispintar/internal/domain"
)

// TemplateResult is the raw output of one template run: the question
// content plus a signature base that deterministically encodes the
// generating parameters. The same parameters must always produce the
// same SignatureBase, so re-running a template cannot resurface
// content a user has already seen.
type TemplateResult struct {
	Text          string
	Explanation   string
	SignatureBase string

	// Numeric answers: the generator synthesizes distractors by
	// jittering the correct value within Spread. A zero Spread means
	// "derive from the answer magnitude".
	Numeric   float64
	IsNumeric bool
	Spread    int

	// String answers: the template hand-picks its own 3 distractors,
	// taken verbatim by the generator.
	Answer      string
	Distractors [3]string

	Diagram *domain.DiagramSpec
}

// Template is a parameterized question-generation rule for one
// level/subject pair. Generate must be pure aside from the injected
// random source: no engine state, no I/O, O(1) time. That contract is
// what makes concurrent session builds safe without locks.
type Template struct {
	Name     string
	Generate func(r Rand) TemplateResult
}

type catalogKey struct {
	level   domain.Level
	subject string
}

var (
	catalogMu sync.RWMutex
	catalogs  = map[catalogKey][]Template{}
)

// Register adds a template list for a level/subject pair. Catalogs are
// assembled at init time and treated as immutable afterwards.
func Register(level domain.Level, subject string, templates []Template) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogs[catalogKey{level: level, subject: subject}] = append(
		catalogs[catalogKey{level: level, subject: subject}], templates...)
}

// TemplatesFor returns the template list for a level/subject pair.
// Unknown pairs fall back to the default catalog (SD Matematika), so a
// session for an unregistered pair degrades instead of failing.
func TemplatesFor(level domain.Level, subject string) []Template {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if ts, ok := catalogs[catalogKey{level: level, subject: subject}]; ok && len(ts) > 0 {
		return ts
	}
	return catalogs[catalogKey{level: domain.LevelSD, subject: domain.SubjectMatematika}]
}

// pick returns a uniformly random element of vals
func pick[T any](r Rand, vals []T) T {
	return vals[r.Intn(len(vals))]
}

// between returns a uniform int in [lo, hi]
func between(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// bankEntry is a hand-authored fact for string-answer templates: one
// question with its correct answer and three plausible wrong answers.
type bankEntry struct {
	question    string
	answer      string
	distractors [3]string
	explanation string
}

// bankTemplate builds a string-answer template over a fixed fact bank.
// The signature encodes the bank index, so each fact is one unit of
// unique content.
func bankTemplate(name, sigPrefix string, bank []bankEntry) Template {
	return Template{
		Name: name,
		Generate: func(r Rand) TemplateResult {
			i := r.Intn(len(bank))
			e := bank[i]
			return TemplateResult{
				Text:          e.question,
				Explanation:   e.explanation,
				SignatureBase: fmt.Sprintf("%s:%d", sigPrefix, i),
				Answer:        e.answer,
				Distractors:   e.distractors,
			}
		},
	}
}
