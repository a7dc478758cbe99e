package domain

// Level represents a schooling tier
type Level string

const (
	LevelSD  Level = "SD"  // elementary school
	LevelSMP Level = "SMP" // junior high school
)

// Valid reports whether the level is one of the known tiers
func (l Level) Valid() bool {
	return l == LevelSD || l == LevelSMP
}

// Subject names per level. The subject set depends on the level.
const (
	SubjectMatematika      = "Matematika"
	SubjectIPA             = "IPA"
	SubjectIPS             = "IPS"
	SubjectBahasaIndonesia = "Bahasa Indonesia"
	SubjectBahasaInggris   = "Bahasa Inggris"
)

var subjectsByLevel = map[Level][]string{
	LevelSD:  {SubjectMatematika, SubjectIPA, SubjectBahasaIndonesia},
	LevelSMP: {SubjectMatematika, SubjectIPA, SubjectIPS, SubjectBahasaInggris},
}

// SubjectsForLevel returns the closed subject set for a level.
// Unknown levels get an empty list.
func SubjectsForLevel(level Level) []string {
	subjects := subjectsByLevel[level]
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

// ValidSubject reports whether subject belongs to the level's subject set
func ValidSubject(level Level, subject string) bool {
	for _, s := range subjectsByLevel[level] {
		if s == subject {
			return true
		}
	}
	return false
}

// DiagramSpec is a structured drawing instruction for client-side
// rendering of a geometry or physics illustration.
type DiagramSpec struct {
	Kind   string             `json:"kind"`
	Params map[string]float64 `json:"params"`
}

// OptionCount is the fixed number of answer options per question
const OptionCount = 4

// Question is the unit of a quiz, produced either by the procedural
// generator or mapped from a curated store record. Signature is the
// deduplication key: for curated questions it equals the store id, for
// generated questions it is derived from the generating parameters.
// At most one of Diagram and ImageURL carries visual content.
type Question struct {
	ID           string
	Signature    string
	Level        Level
	Subject      string
	QuestionText string
	Options      []string
	CorrectIndex int
	Explanation  string
	Diagram      *DiagramSpec
	ImageURL     string
}

// Validate validates the question invariants
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewMissingFieldError("id")
	}
	if q.Signature == "" {
		return NewMissingFieldError("signature")
	}
	if q.QuestionText == "" {
		return NewMissingFieldError("question_text")
	}
	if len(q.Options) != OptionCount {
		return NewOutOfRangeError("options", len(q.Options), OptionCount, OptionCount)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return NewOutOfRangeError("correct_index", q.CorrectIndex, 0, OptionCount-1)
	}
	if q.Diagram != nil && q.ImageURL != "" {
		return NewValidationError("diagram", "diagram and image_url are mutually exclusive")
	}
	return nil
}

// CorrectOption returns the option text at the correct index
func (q *Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// QuizSession is the engine output: an ordered question list of the
// requested size plus a mastery signal. It is owned entirely by the
// caller; the engine keeps no state across sessions.
type QuizSession struct {
	Questions      []Question
	MasteryReached bool
}
