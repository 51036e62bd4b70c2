package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/egzamapp/config"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/model"
	"github.com/lshigami/egzamapp/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService drives an attempt from in progress to completed.
type AttemptService interface {
	StartExam(ctx context.Context, examID uint, userID string) (*dto.UserExamResponseDTO, error)
	// SubmitExamAnswers grades and completes an attempt. It fails with ErrUserExamNotFound
	// when the attempt is missing or not owned by userID, and ErrExamAlreadyCompleted on resubmission.
	SubmitExamAnswers(ctx context.Context, req dto.ExamSubmissionDTO, userID string) (*dto.UserExamResponseDTO, error)
}

type attemptService struct {
	examRepo           repository.ExamRepository
	userExamRepo       repository.UserExamRepository
	userAnswerRepo     repository.UserAnswerRepository
	db                 *gorm.DB // transaction boundary for submission
	startScopedToOwner bool
	now                func() time.Time
}

func NewAttemptService(
	examRepo repository.ExamRepository,
	userExamRepo repository.UserExamRepository,
	userAnswerRepo repository.UserAnswerRepository,
	db *gorm.DB,
	cfg *config.Config,
) AttemptService {
	return &attemptService{
		examRepo:           examRepo,
		userExamRepo:       userExamRepo,
		userAnswerRepo:     userAnswerRepo,
		db:                 db,
		startScopedToOwner: cfg.Exam.StartScopedToOwner,
		now:                time.Now,
	}
}

func (s *attemptService) StartExam(ctx context.Context, examID uint, userID string) (*dto.UserExamResponseDTO, error) {
	var err error
	if s.startScopedToOwner {
		_, err = s.examRepo.FindByIDAndOwnerWithQuestions(ctx, examID, userID)
	} else {
		_, err = s.examRepo.FindByIDWithQuestions(ctx, examID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("StartExam: exam lookup failed")
		return nil, fmt.Errorf("error looking up exam %d: %w", examID, err)
	}

	userExam := model.UserExam{
		UserID:    userID,
		ExamID:    examID,
		StartTime: s.now().UTC(),
		Completed: false,
		Answers:   []model.UserAnswer{},
	}
	if err := s.userExamRepo.Create(ctx, &userExam); err != nil {
		log.Error().Err(err).Uint("examID", examID).Str("userID", userID).Msg("StartExam: failed to create user exam")
		return nil, fmt.Errorf("error creating attempt for exam %d: %w", examID, err)
	}
	log.Info().Uint("userExamID", userExam.ID).Uint("examID", examID).Str("userID", userID).Msg("Exam started")

	return toUserExamResponse(&userExam)
}

func (s *attemptService) SubmitExamAnswers(ctx context.Context, req dto.ExamSubmissionDTO, userID string) (*dto.UserExamResponseDTO, error) {
	var score, correct, total int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userExams := s.userExamRepo.WithTx(tx)

		userExam, err := userExams.FindByIDAndOwnerWithExam(ctx, req.UserExamID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserExamNotFound
			}
			return fmt.Errorf("load user exam %d: %w", req.UserExamID, err)
		}
		if userExam.Completed {
			return ErrExamAlreadyCompleted
		}

		var questions []model.Question
		if userExam.Exam != nil {
			questions = userExam.Exam.Questions
		}
		graded, c := GradeAnswers(questions, req.Answers)
		correct, total = c, len(questions)
		score = ComputeScore(correct, total)

		// compare-and-set on completed; a concurrent submit loses here
		ok, err := userExams.MarkCompleted(ctx, userExam.ID, score, s.now().UTC())
		if err != nil {
			return fmt.Errorf("complete user exam %d: %w", userExam.ID, err)
		}
		if !ok {
			return ErrExamAlreadyCompleted
		}

		if err := s.userAnswerRepo.WithTx(tx).ReplaceForUserExam(ctx, userExam.ID, graded); err != nil {
			return fmt.Errorf("store answers for user exam %d: %w", userExam.ID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserExamNotFound) || errors.Is(err, ErrExamAlreadyCompleted) {
			log.Warn().Err(err).Uint("userExamID", req.UserExamID).Str("userID", userID).Msg("SubmitExamAnswers: rejected")
			return nil, err
		}
		log.Error().Err(err).Uint("userExamID", req.UserExamID).Msg("SubmitExamAnswers: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("userExamID", req.UserExamID).
		Str("userID", userID).
		Int("correct", correct).
		Int("total", total).
		Int("score", score).
		Msg("Exam submitted")

	userExam, err := s.userExamRepo.FindByIDAndOwner(ctx, req.UserExamID, userID)
	if err != nil {
		log.Error().Err(err).Uint("userExamID", req.UserExamID).Msg("SubmitExamAnswers: failed to reload graded attempt")
		return nil, fmt.Errorf("error reloading attempt %d: %w", req.UserExamID, err)
	}
	return toUserExamResponse(userExam)
}

func toUserExamResponse(userExam *model.UserExam) (*dto.UserExamResponseDTO, error) {
	var resp dto.UserExamResponseDTO
	if err := copier.Copy(&resp, userExam); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	if resp.Answers == nil {
		resp.Answers = []dto.UserAnswerResponseDTO{}
	}
	return &resp, nil
}
