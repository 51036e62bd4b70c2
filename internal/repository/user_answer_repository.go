package repository

import (
	"context"

	"github.com/lshigami/egzamapp/internal/model"
	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	WithTx(tx *gorm.DB) UserAnswerRepository
	// ReplaceForUserExam deletes the attempt's answers and inserts answers in their place.
	ReplaceForUserExam(ctx context.Context, userExamID uint, answers []model.UserAnswer) error
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) WithTx(tx *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: tx}
}

func (r *userAnswerRepository) ReplaceForUserExam(ctx context.Context, userExamID uint, answers []model.UserAnswer) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_exam_id = ?", userExamID).Delete(&model.UserAnswer{}).Error; err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}
	for i := range answers {
		answers[i].ID = 0
		answers[i].UserExamID = userExamID
	}
	return db.Create(&answers).Error
}
