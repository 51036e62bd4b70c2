package repository

import (
	"context"
	"time"

	"github.com/lshigami/egzamapp/internal/model"
	"gorm.io/gorm"
)

type UserExamRepository interface {
	// WithTx returns a repository bound to tx.
	WithTx(tx *gorm.DB) UserExamRepository
	Create(ctx context.Context, userExam *model.UserExam) error
	FindByIDAndOwner(ctx context.Context, id uint, userID string) (*model.UserExam, error)
	FindByIDAndOwnerWithExam(ctx context.Context, id uint, userID string) (*model.UserExam, error)
	// MarkCompleted flips completed from false to true and records score and end time.
	// It reports false when the attempt was already completed.
	MarkCompleted(ctx context.Context, id uint, score int, endTime time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type userExamRepository struct {
	db *gorm.DB
}

func NewUserExamRepository(db *gorm.DB) UserExamRepository {
	return &userExamRepository{db: db}
}

func (r *userExamRepository) WithTx(tx *gorm.DB) UserExamRepository {
	return &userExamRepository{db: tx}
}

func (r *userExamRepository) Create(ctx context.Context, userExam *model.UserExam) error {
	return r.db.WithContext(ctx).Omit("Exam").Create(userExam).Error
}

func (r *userExamRepository) FindByIDAndOwner(ctx context.Context, id uint, userID string) (*model.UserExam, error) {
	var ue model.UserExam
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("user_answers.id ASC") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ue).Error
	if err != nil {
		return nil, err
	}
	return &ue, nil
}

func (r *userExamRepository) FindByIDAndOwnerWithExam(ctx context.Context, id uint, userID string) (*model.UserExam, error) {
	var ue model.UserExam
	err := r.db.WithContext(ctx).
		Preload("Exam").
		Preload("Exam.Questions", orderedQuestions).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ue).Error
	if err != nil {
		return nil, err
	}
	return &ue, nil
}

func (r *userExamRepository) MarkCompleted(ctx context.Context, id uint, score int, endTime time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserExam{}).
		Where("id = ? AND completed = ?", id, false).
		Updates(map[string]interface{}{
			"completed": true,
			"score":     score,
			"end_time":  endTime,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userExamRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserExam{}).Count(&n).Error
	return n, err
}
