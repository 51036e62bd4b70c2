package service

import (
	"context"
	"sort"
	"time"

	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const APIVersion = "1.0.0"

type DiagnosticsService interface {
	Ping(ctx context.Context) dto.PingResponse
	// DatabaseStatus reports connectivity and row counts. Errors are logged, not returned.
	DatabaseStatus(ctx context.Context) dto.DatabaseStatusDTO
}

type diagnosticsService struct {
	db           *gorm.DB
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	userExamRepo repository.UserExamRepository
	now          func() time.Time
}

func NewDiagnosticsService(
	db *gorm.DB,
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	userExamRepo repository.UserExamRepository,
) DiagnosticsService {
	return &diagnosticsService{
		db:           db,
		examRepo:     examRepo,
		questionRepo: questionRepo,
		userExamRepo: userExamRepo,
		now:          time.Now,
	}
}

func (s *diagnosticsService) Ping(ctx context.Context) dto.PingResponse {
	log.Ctx(ctx).Info().Msg("Test endpoint was called successfully")
	return dto.PingResponse{
		Message:   "API is working correctly!",
		Timestamp: s.now().UTC(),
		Version:   APIVersion,
	}
}

func (s *diagnosticsService) DatabaseStatus(ctx context.Context) dto.DatabaseStatusDTO {
	status := dto.DatabaseStatusDTO{
		Provider: s.db.Dialector.Name(),
		Tables:   []string{},
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: failed to get sql.DB")
		return status
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: ping failed")
		return status
	}
	status.CanConnect = true

	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: failed to list tables")
	} else {
		sort.Strings(tables)
		status.Tables = tables
	}

	if status.ExamsCount, err = s.examRepo.Count(ctx); err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: failed to count exams")
	}
	if status.QuestionsCount, err = s.questionRepo.Count(ctx); err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: failed to count questions")
	}
	if status.AttemptsCount, err = s.userExamRepo.Count(ctx); err != nil {
		log.Error().Err(err).Msg("DatabaseStatus: failed to count attempts")
	}
	return status
}
