package handler

import (
	"kuispintar/internal/domain"
	"kuispintar/internal/dto"
	"kuispintar/internal/logger"
	"kuispintar/internal/service"
	"kuispintar/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// userIDHeader carries the caller's opaque user identity. Auth flows
// live outside this service; an absent header gets the shared
// anonymous id, so all header-less callers pool one history and one
// streak. Clients that want isolated dedup mint their own id (a device
// id or a random token) and send it on every request.
const (
	userIDHeader    = "X-User-ID"
	anonymousUserID = "anonymous"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	sessions  service.SessionService
	progress  service.ProgressService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(sessions service.SessionService, progress service.ProgressService) *QuizHandler {
	return &QuizHandler{
		sessions:  sessions,
		progress:  progress,
		validator: validation.NewValidator(),
	}
}

func requestUserID(c *fiber.Ctx) string {
	if id := c.Get(userIDHeader); id != "" {
		return id
	}
	return anonymousUserID
}

// GetSession godoc
// @Summary Build a quiz session
// @Description Returns a session of curated and generated questions for a level/subject pair
// @Tags quiz
// @Accept json
// @Produce json
// @Param level query string true "Education level (SD or SMP)"
// @Param subject query string true "Subject name"
// @Param count query int false "Number of questions"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/session [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	level := domain.Level(c.Locals("validated_level").(string))
	subject := c.Locals("validated_subject").(string)
	count := c.Locals("validated_count").(int)
	userID := requestUserID(c)

	session, err := h.sessions.FetchSession(c.Context(), level, subject, count, userID)
	if err != nil {
		logger.Get().Error("Failed to build session",
			zap.Error(err),
			zap.String("level", string(level)),
			zap.String("subject", subject),
			zap.String("user_id", userID),
		)
		return err
	}

	return c.JSON(dto.FromDomainSession(session))
}

// SubmitAnswer godoc
// @Summary Record an answered question
// @Description Appends the answer to the user's history and updates their streak
// @Tags quiz
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Answered question"
// @Success 200 {object} dto.StreakResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{
			domain.NewInvalidFormatError("body", err.Error()),
		}
	}

	if errs := h.validator.ValidateSubmitAnswer(req.Subject, req.QuestionSignature); len(errs) > 0 {
		return errs
	}

	entry := domain.NewAnswerHistoryEntry(requestUserID(c), req.Subject, req.QuestionSignature, req.IsCorrect)
	streak, err := h.progress.RecordAnswer(c.Context(), entry)
	if err != nil {
		return err
	}

	return c.JSON(dto.StreakResponse{Current: streak.Current, Best: streak.Best})
}

// GetStreak godoc
// @Summary Get the user's answer streak
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.StreakResponse
// @Router /quiz/streak [get]
func (h *QuizHandler) GetStreak(c *fiber.Ctx) error {
	streak, err := h.progress.GetStreak(c.Context(), requestUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.StreakResponse{Current: streak.Current, Best: streak.Best})
}

// GetSubjects godoc
// @Summary List subjects for a level
// @Tags subjects
// @Produce json
// @Param level query string true "Education level (SD or SMP)"
// @Success 200 {object} dto.SubjectsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /subjects [get]
func (h *QuizHandler) GetSubjects(c *fiber.Ctx) error {
	level := domain.Level(c.Locals("validated_level").(string))
	return c.JSON(dto.SubjectsResponse{
		Level:    string(level),
		Subjects: domain.SubjectsForLevel(level),
	})
}
