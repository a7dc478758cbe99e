package quizgen

import (
	"math"
	"strconv"

	"kuispintar/internal/domain"
	"kuispintar/internal/util"
)

// Generator instantiates templates into ready-to-serve questions. It
// holds no mutable state besides the injected random source, so a
// single Generator serves concurrent session builds.
type Generator struct {
	rng Rand
}

// NewGenerator creates a Generator over the given random source.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Question generates one question for the level/subject pair. Unknown
// pairs fall back to the default catalog rather than failing; the
// resulting question still carries the requested level and subject.
func (g *Generator) Question(level domain.Level, subject string) domain.Question {
	templates := TemplatesFor(level, subject)
	tpl := templates[g.rng.Intn(len(templates))]
	res := tpl.Generate(g.rng)

	var options []string
	var correct string
	if res.IsNumeric {
		correct = formatNumber(res.Numeric)
		options = make([]string, 0, domain.OptionCount)
		options = append(options, correct)
		for _, d := range g.numericDistractors(res.Numeric, res.Spread) {
			options = append(options, formatNumber(d))
		}
	} else {
		correct = res.Answer
		options = []string{res.Answer, res.Distractors[0], res.Distractors[1], res.Distractors[2]}
	}

	correctIndex := g.shuffleOptions(options, 0)

	return domain.Question{
		ID:           util.NewULID(),
		Signature:    res.SignatureBase,
		Level:        level,
		Subject:      subject,
		QuestionText: res.Text,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  res.Explanation,
		Diagram:      res.Diagram,
	}
}

// numericDistractors synthesizes 3 unique wrong answers by jittering
// the correct value with integer offsets in [-spread, spread]. When
// the sampling budget runs out (tiny spreads can collide forever), the
// remainder is filled deterministically just outside the spread window
// so uniqueness always holds.
func (g *Generator) numericDistractors(correct float64, spread int) []float64 {
	if spread <= 0 {
		spread = int(math.Max(1, math.Floor(math.Abs(correct)*0.3)))
	}

	chosen := make([]float64, 0, 3)
	attempts := 0
	budget := spread*8 + 16
	for len(chosen) < 3 {
		if attempts >= budget {
			// Fill values step past the whole jitter window, so they
			// can never collide with a sampled distractor either.
			chosen = append(chosen, correct+float64(spread+len(chosen)+1))
			continue
		}
		attempts++
		offset := g.rng.Intn(2*spread+1) - spread
		candidate := correct + float64(offset)
		if candidate == correct || containsFloat(chosen, candidate) {
			continue
		}
		chosen = append(chosen, candidate)
	}
	return chosen
}

// shuffleOptions applies a Fisher-Yates shuffle in place and returns
// the post-shuffle position of the element that started at trackIndex.
func (g *Generator) shuffleOptions(options []string, trackIndex int) int {
	tracked := trackIndex
	for i := len(options) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
		switch tracked {
		case i:
			tracked = j
		case j:
			tracked = i
		}
	}
	return tracked
}

// ShuffleQuestions applies a uniform shuffle to a question list, used
// by the session builder to interleave curated and generated items.
func ShuffleQuestions(r Rand, questions []domain.Question) {
	for i := len(questions) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}

// formatNumber renders integers as plain digits and anything else
// fixed to 2 decimal places.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func containsFloat(vals []float64, v float64) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
