package dto

import "kuispintar/internal/domain"

// DiagramSpecResponse mirrors domain.DiagramSpec for API payloads
type DiagramSpecResponse struct {
	Kind   string             `json:"kind"`
	Params map[string]float64 `json:"params"`
}

// QuestionResponse represents a question in the API response
// @Description A single quiz question with shuffled options
type QuestionResponse struct {
	ID           string               `json:"id"`
	Signature    string               `json:"signature"`
	Level        string               `json:"level"`
	Subject      string               `json:"subject"`
	Question     string               `json:"question"`
	Options      []string             `json:"options"`
	CorrectIndex int                  `json:"correct_index"`
	Explanation  string               `json:"explanation"`
	Diagram      *DiagramSpecResponse `json:"diagram,omitempty"`
	ImageURL     string               `json:"image_url,omitempty"`
}

// SessionResponse represents a quiz session in the API response
// @Description An ordered question list plus a mastery signal
type SessionResponse struct {
	Questions      []QuestionResponse `json:"questions"`
	MasteryReached bool               `json:"mastery_reached"`
}

// FromDomainSession maps a domain session to its response shape
func FromDomainSession(session *domain.QuizSession) *SessionResponse {
	questions := make([]QuestionResponse, 0, len(session.Questions))
	for _, q := range session.Questions {
		qr := QuestionResponse{
			ID:           q.ID,
			Signature:    q.Signature,
			Level:        string(q.Level),
			Subject:      q.Subject,
			Question:     q.QuestionText,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			ImageURL:     q.ImageURL,
		}
		if q.Diagram != nil {
			qr.Diagram = &DiagramSpecResponse{Kind: q.Diagram.Kind, Params: q.Diagram.Params}
		}
		questions = append(questions, qr)
	}
	return &SessionResponse{Questions: questions, MasteryReached: session.MasteryReached}
}

// SubmitAnswerRequest represents an answered question in the API request
// @Description Request body for recording an answered question
type SubmitAnswerRequest struct {
	Subject           string `json:"subject"`
	QuestionSignature string `json:"question_signature"`
	IsCorrect         bool   `json:"is_correct"`
}

// StreakResponse represents a user's answer streak in the API response
type StreakResponse struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// SubjectsResponse lists the subjects available for a level
type SubjectsResponse struct {
	Level    string   `json:"level"`
	Subjects []string `json:"subjects"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
