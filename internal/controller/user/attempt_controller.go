package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/middleware"
	"github.com/lshigami/egzamapp/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// StartExam godoc
// @Summary Start an attempt
// @Description Opens a new in-progress attempt on the exam for the calling user.
// @Tags Attempts
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.UserExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Error starting exam"
// @Router /exams/{id}/start [post]
func (c *AttemptController) StartExam(ctx *gin.Context) {
	examID, ok := parseID(ctx, "id", "Invalid exam ID format")
	if !ok {
		return
	}

	userExam, err := c.attemptService.StartExam(ctx.Request.Context(), examID, middleware.UserID(ctx))
	if err != nil {
		writeServiceError(ctx, err, "Error starting exam")
		return
	}
	ctx.JSON(http.StatusOK, userExam)
}

// SubmitExam godoc
// @Summary Submit answers for an attempt
// @Description Grades the answers, completes the attempt and returns the score. An attempt can be submitted once.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param submission body dto.ExamSubmissionDTO true "Attempt ID and selected answers"
// @Success 200 {object} dto.UserExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already completed"
// @Failure 500 {object} dto.ErrorResponse "Error submitting exam"
// @Router /exams/submit [post]
func (c *AttemptController) SubmitExam(ctx *gin.Context) {
	var req dto.ExamSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitExam: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userExam, err := c.attemptService.SubmitExamAnswers(ctx.Request.Context(), req, middleware.UserID(ctx))
	if err != nil {
		writeServiceError(ctx, err, "Error submitting exam")
		return
	}
	ctx.JSON(http.StatusOK, userExam)
}
