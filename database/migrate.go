package database

import (
	"github.com/lshigami/egzamapp/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Migrate creates or updates the exams, questions, user_exams and user_answers tables.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.UserExam{},
		&model.UserAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
