package user

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/config"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/middleware"
	"github.com/lshigami/egzamapp/internal/service"
	"github.com/rs/zerolog/log"
)

// multipart framing allowance on top of the file itself
const multipartOverhead = 64 << 10

type ExamController struct {
	examService service.ExamService
	maxBytes    int64
}

func NewExamController(examService service.ExamService, cfg *config.Config) *ExamController {
	return &ExamController{examService: examService, maxBytes: cfg.Upload.MaxBytes}
}

// UploadExam godoc
// @Summary Upload an exam file
// @Description Upload a JSON exam document (title, description, passing score, time limit, questions). The exam is stored for the calling user.
// @Tags Exams
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Exam JSON file"
// @Success 200 {object} dto.ExamUploadResult
// @Failure 400 {object} dto.ErrorResponse "No file, wrong media type, too large or invalid exam JSON"
// @Failure 500 {object} dto.ErrorResponse "Error processing file"
// @Router /exams/upload [post]
func (c *ExamController) UploadExam(ctx *gin.Context) {
	if c.maxBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBytes+multipartOverhead)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No file uploaded"})
		return
	}
	if file.Size == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No file uploaded"})
		return
	}
	if c.maxBytes > 0 && file.Size > c.maxBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File too large"})
		return
	}
	if mediaType, _, err := mime.ParseMediaType(file.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Only JSON files are supported"})
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("UploadExam: failed to open uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error processing file"})
		return
	}
	defer f.Close()

	userID := middleware.UserID(ctx)
	result := c.examService.ProcessExamFile(ctx.Request.Context(), f, userID)
	switch {
	case result.Success:
		ctx.JSON(http.StatusOK, result)
	case result.Failure == dto.FailureValidation:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: result.Message})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: result.Message})
	}
}

// GetExams godoc
// @Summary List my exams
// @Description All exams uploaded by the calling user, newest first, each with its questions.
// @Tags Exams
// @Produce json
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	exams, err := c.examService.GetUserExams(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetExams: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get one of my exams
// @Tags Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, ok := parseID(ctx, "id", "Invalid exam ID format")
	if !ok {
		return
	}

	exam, err := c.examService.GetExam(ctx.Request.Context(), examID, middleware.UserID(ctx))
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve exam")
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

func parseID(ctx *gin.Context, param, message string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message})
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps service sentinels to status codes. Anything else is a logged 500.
func writeServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrExamNotFound), errors.Is(err, service.ErrUserExamNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrExamAlreadyCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}
