package repository

import (
	"context"

	"github.com/lshigami/egzamapp/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	// Create inserts the exam together with its questions.
	Create(ctx context.Context, exam *model.Exam) error
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Exam, error)
	FindByIDAndOwnerWithQuestions(ctx context.Context, id uint, userID string) (*model.Exam, error)
	FindAllByOwnerWithQuestions(ctx context.Context, userID string) ([]model.Exam, error)
	Count(ctx context.Context) (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("questions.position ASC").Order("questions.id ASC")
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	// gorm wraps the exam row and its has-many questions in one transaction
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDAndOwnerWithQuestions(ctx context.Context, id uint, userID string) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("id = ? AND user_id = ?", id, userID).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllByOwnerWithQuestions(ctx context.Context, userID string) ([]model.Exam, error) {
	exams := make([]model.Exam, 0)
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("user_id = ?", userID).
		Order("upload_date DESC").
		Order("id DESC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Exam{}).Count(&n).Error
	return n, err
}
