package user

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/middleware"
	"github.com/lshigami/egzamapp/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockExamService struct {
	processFn func(ctx context.Context, file io.Reader, userID string) *dto.ExamUploadResult
	listFn    func(ctx context.Context, userID string) ([]dto.ExamResponseDTO, error)
	getFn     func(ctx context.Context, examID uint, userID string) (*dto.ExamResponseDTO, error)
}

func (m *mockExamService) ProcessExamFile(ctx context.Context, file io.Reader, userID string) *dto.ExamUploadResult {
	return m.processFn(ctx, file, userID)
}

func (m *mockExamService) GetUserExams(ctx context.Context, userID string) ([]dto.ExamResponseDTO, error) {
	return m.listFn(ctx, userID)
}

func (m *mockExamService) GetExam(ctx context.Context, examID uint, userID string) (*dto.ExamResponseDTO, error) {
	return m.getFn(ctx, examID, userID)
}

type mockAttemptService struct {
	startFn  func(ctx context.Context, examID uint, userID string) (*dto.UserExamResponseDTO, error)
	submitFn func(ctx context.Context, req dto.ExamSubmissionDTO, userID string) (*dto.UserExamResponseDTO, error)
}

func (m *mockAttemptService) StartExam(ctx context.Context, examID uint, userID string) (*dto.UserExamResponseDTO, error) {
	return m.startFn(ctx, examID, userID)
}

func (m *mockAttemptService) SubmitExamAnswers(ctx context.Context, req dto.ExamSubmissionDTO, userID string) (*dto.UserExamResponseDTO, error) {
	return m.submitFn(ctx, req, userID)
}

func newTestRouter(exams *mockExamService, attempts *mockAttemptService, maxBytes int64) *gin.Engine {
	cfg := testutil.Config()
	cfg.Upload.MaxBytes = maxBytes

	examCtrl := NewExamController(exams, cfg)
	attemptCtrl := NewAttemptController(attempts)

	r := gin.New()
	r.Use(middleware.Identity(cfg))
	r.POST("/api/exams/upload", examCtrl.UploadExam)
	r.GET("/api/exams", examCtrl.GetExams)
	r.GET("/api/exams/:id", examCtrl.GetExam)
	r.POST("/api/exams/:id/start", attemptCtrl.StartExam)
	r.POST("/api/exams/submit", attemptCtrl.SubmitExam)
	return r
}
