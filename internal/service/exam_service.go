package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/model"
	"github.com/lshigami/egzamapp/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ExamService interface {
	// ProcessExamFile parses an uploaded exam document and stores it for userID.
	// Failures are reported in the result, never as an error.
	ProcessExamFile(ctx context.Context, file io.Reader, userID string) *dto.ExamUploadResult
	GetUserExams(ctx context.Context, userID string) ([]dto.ExamResponseDTO, error)
	// GetExam returns ErrExamNotFound both for missing exams and for exams owned by someone else.
	GetExam(ctx context.Context, examID uint, userID string) (*dto.ExamResponseDTO, error)
}

type examService struct {
	examRepo repository.ExamRepository
	now      func() time.Time
}

func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examService{examRepo: examRepo, now: time.Now}
}

func (s *examService) ProcessExamFile(ctx context.Context, file io.Reader, userID string) *dto.ExamUploadResult {
	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ProcessExamFile: failed to read upload")
		return processingFailure()
	}

	var upload *dto.ExamUploadDTO
	if err := json.Unmarshal(data, &upload); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("ProcessExamFile: invalid exam JSON")
		return &dto.ExamUploadResult{
			Success: false,
			Failure: dto.FailureValidation,
			Message: "Invalid JSON format: " + err.Error(),
		}
	}
	if upload == nil {
		return &dto.ExamUploadResult{
			Success: false,
			Failure: dto.FailureValidation,
			Message: "Invalid exam file format",
		}
	}

	exam, err := examFromUpload(upload)
	if err != nil {
		log.Error().Err(err).Msg("ProcessExamFile: failed to map upload to exam")
		return processingFailure()
	}
	exam.UserID = userID
	exam.UploadDate = s.now().UTC()

	if err := s.examRepo.Create(ctx, exam); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ProcessExamFile: failed to store exam")
		return processingFailure()
	}
	log.Info().Uint("examID", exam.ID).Str("userID", userID).Int("questions", len(exam.Questions)).Msg("Exam uploaded")

	resp, err := toExamResponse(exam)
	if err != nil {
		log.Error().Err(err).Uint("examID", exam.ID).Msg("ProcessExamFile: failed to prepare response")
		return processingFailure()
	}
	return &dto.ExamUploadResult{
		Success: true,
		Message: "Exam uploaded successfully",
		Exam:    resp,
	}
}

func processingFailure() *dto.ExamUploadResult {
	return &dto.ExamUploadResult{
		Success: false,
		Failure: dto.FailureProcessing,
		Message: "Error processing file",
	}
}

func examFromUpload(upload *dto.ExamUploadDTO) (*model.Exam, error) {
	var exam model.Exam
	if err := copier.Copy(&exam, upload); err != nil {
		return nil, fmt.Errorf("copy exam fields: %w", err)
	}

	exam.Questions = make([]model.Question, 0, len(upload.Questions))
	for i, q := range upload.Questions {
		var question model.Question
		if err := copier.Copy(&question, &q); err != nil {
			return nil, fmt.Errorf("copy question %d: %w", i, err)
		}
		question.ID = 0
		question.Position = i
		if q.QuestionText == "" {
			question.QuestionText = q.Question
		}
		if question.Options == nil {
			question.Options = []string{}
		}
		exam.Questions = append(exam.Questions, question)
	}
	return &exam, nil
}

func (s *examService) GetUserExams(ctx context.Context, userID string) ([]dto.ExamResponseDTO, error) {
	exams, err := s.examRepo.FindAllByOwnerWithQuestions(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserExams: repository error")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	out := make([]dto.ExamResponseDTO, 0, len(exams))
	for i := range exams {
		resp, err := toExamResponse(&exams[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *examService) GetExam(ctx context.Context, examID uint, userID string) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDAndOwnerWithQuestions(ctx, examID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("GetExam: repository error")
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	return toExamResponse(exam)
}

func toExamResponse(exam *model.Exam) (*dto.ExamResponseDTO, error) {
	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	for i := range resp.Questions {
		if resp.Questions[i].Options == nil {
			resp.Questions[i].Options = []string{}
		}
	}
	resp.TimeLimitMinutes = TimeLimitMinutes(exam.TimeLimit)
	return &resp, nil
}
