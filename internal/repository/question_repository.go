package repository

import (
	"context"

	"github.com/lshigami/egzamapp/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Count(ctx context.Context) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&n).Error
	return n, err
}
