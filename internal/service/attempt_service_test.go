package service

import (
	"context"
	"testing"

	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/model"
	"github.com/lshigami/egzamapp/internal/repository"
	"github.com/lshigami/egzamapp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type attemptFixture struct {
	db           *gorm.DB
	examRepo     repository.ExamRepository
	userExamRepo repository.UserExamRepository
	svc          AttemptService
}

func newAttemptFixture(t *testing.T, scoped bool) *attemptFixture {
	db := testutil.NewTestDB(t)
	cfg := testutil.Config()
	cfg.Exam.StartScopedToOwner = scoped

	f := &attemptFixture{
		db:           db,
		examRepo:     repository.NewExamRepository(db),
		userExamRepo: repository.NewUserExamRepository(db),
	}
	f.svc = NewAttemptService(f.examRepo, f.userExamRepo, repository.NewUserAnswerRepository(db), db, cfg)
	return f
}

// seedExam stores an exam owned by owner whose questions have the given correct answers.
func (f *attemptFixture) seedExam(t *testing.T, owner string, correct ...int) *model.Exam {
	exam := &model.Exam{ExamTitle: "Seeded", UserID: owner, TimeLimit: "10 minutes"}
	for i, c := range correct {
		exam.Questions = append(exam.Questions, model.Question{
			Position:      i,
			QuestionText:  "Q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: c,
		})
	}
	require.NoError(t, f.examRepo.Create(context.Background(), exam))
	return exam
}

func answersFor(exam *model.Exam, selected ...int) []dto.SubmittedAnswerDTO {
	out := make([]dto.SubmittedAnswerDTO, len(selected))
	for i, s := range selected {
		out[i] = dto.SubmittedAnswerDTO{QuestionID: exam.Questions[i].ID, SelectedAnswer: s}
	}
	return out
}

func TestStartExamCreatesInProgressAttempt(t *testing.T) {
	f := newAttemptFixture(t, true)
	exam := f.seedExam(t, "alice", 0, 1)

	ue, err := f.svc.StartExam(context.Background(), exam.ID, "alice")
	require.NoError(t, err)
	assert.NotZero(t, ue.ID)
	assert.Equal(t, "alice", ue.UserID)
	assert.Equal(t, exam.ID, ue.ExamID)
	assert.False(t, ue.Completed)
	assert.Zero(t, ue.Score)
	assert.Nil(t, ue.EndTime)
	assert.False(t, ue.StartTime.IsZero())
	assert.Empty(t, ue.Answers)
}

func TestStartExamMissingExam(t *testing.T) {
	f := newAttemptFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.StartExam(ctx, 42, "alice")
	assert.ErrorIs(t, err, ErrExamNotFound)

	n, err := f.userExamRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStartExamOwnership(t *testing.T) {
	t.Run("scoped", func(t *testing.T) {
		f := newAttemptFixture(t, true)
		exam := f.seedExam(t, "alice", 0)

		_, err := f.svc.StartExam(context.Background(), exam.ID, "bob")
		assert.ErrorIs(t, err, ErrExamNotFound)
	})
	t.Run("unscoped", func(t *testing.T) {
		f := newAttemptFixture(t, false)
		exam := f.seedExam(t, "alice", 0)

		ue, err := f.svc.StartExam(context.Background(), exam.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", ue.UserID)
	})
}

func TestSubmitExamAnswersScores(t *testing.T) {
	tests := []struct {
		name      string
		correct   []int
		selected  []int
		wantScore int
	}{
		{"three of four", []int{0, 1, 2, 3}, []int{0, 1, 2, 2}, 75},
		{"one of two", []int{1, 0}, []int{1, 1}, 50},
		{"unanswered count against", []int{0, 0, 0, 0}, []int{0}, 25},
		{"no questions", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAttemptFixture(t, true)
			ctx := context.Background()
			exam := f.seedExam(t, "alice", tt.correct...)

			started, err := f.svc.StartExam(ctx, exam.ID, "alice")
			require.NoError(t, err)

			req := dto.ExamSubmissionDTO{UserExamID: started.ID, Answers: answersFor(exam, tt.selected...)}
			done, err := f.svc.SubmitExamAnswers(ctx, req, "alice")
			require.NoError(t, err)
			assert.True(t, done.Completed)
			assert.Equal(t, tt.wantScore, done.Score)
			require.NotNil(t, done.EndTime)
			assert.False(t, done.EndTime.Before(done.StartTime))
			require.Len(t, done.Answers, len(tt.selected))
			for i, a := range done.Answers {
				assert.Equal(t, tt.selected[i] == tt.correct[i], a.IsCorrect)
			}
		})
	}
}

func TestSubmitExamAnswersTwiceConflicts(t *testing.T) {
	f := newAttemptFixture(t, true)
	ctx := context.Background()
	exam := f.seedExam(t, "alice", 0, 1, 2, 3)

	started, err := f.svc.StartExam(ctx, exam.ID, "alice")
	require.NoError(t, err)

	first, err := f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{
		UserExamID: started.ID,
		Answers:    answersFor(exam, 0, 1, 2, 2),
	}, "alice")
	require.NoError(t, err)
	require.Equal(t, 75, first.Score)

	_, err = f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{
		UserExamID: started.ID,
		Answers:    answersFor(exam, 0, 1, 2, 3),
	}, "alice")
	assert.ErrorIs(t, err, ErrExamAlreadyCompleted)

	stored, err := f.userExamRepo.FindByIDAndOwner(ctx, started.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 75, stored.Score)
	assert.True(t, stored.Completed)
	require.Len(t, stored.Answers, 4)
	assert.False(t, stored.Answers[3].IsCorrect)
}

func TestSubmitExamAnswersNotFound(t *testing.T) {
	f := newAttemptFixture(t, true)
	ctx := context.Background()
	exam := f.seedExam(t, "alice", 0)

	started, err := f.svc.StartExam(ctx, exam.ID, "alice")
	require.NoError(t, err)

	_, err = f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{UserExamID: started.ID}, "bob")
	assert.ErrorIs(t, err, ErrUserExamNotFound)

	_, err = f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{UserExamID: started.ID + 10}, "alice")
	assert.ErrorIs(t, err, ErrUserExamNotFound)

	stored, err := f.userExamRepo.FindByIDAndOwner(ctx, started.ID, "alice")
	require.NoError(t, err)
	assert.False(t, stored.Completed)
}

func TestSubmitExamAnswersKeepsUnknownQuestion(t *testing.T) {
	f := newAttemptFixture(t, true)
	ctx := context.Background()
	exam := f.seedExam(t, "alice", 1, 1)

	started, err := f.svc.StartExam(ctx, exam.ID, "alice")
	require.NoError(t, err)

	answers := append(answersFor(exam, 1), dto.SubmittedAnswerDTO{QuestionID: 9999, SelectedAnswer: 1})
	done, err := f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{UserExamID: started.ID, Answers: answers}, "alice")
	require.NoError(t, err)

	assert.Equal(t, 50, done.Score)
	require.Len(t, done.Answers, 2)
	assert.Equal(t, uint(9999), done.Answers[1].QuestionID)
	assert.False(t, done.Answers[1].IsCorrect)
}

func TestDeletingExamCascadesToAttempts(t *testing.T) {
	f := newAttemptFixture(t, true)
	ctx := context.Background()
	exam := f.seedExam(t, "alice", 0, 1)

	started, err := f.svc.StartExam(ctx, exam.ID, "alice")
	require.NoError(t, err)
	_, err = f.svc.SubmitExamAnswers(ctx, dto.ExamSubmissionDTO{UserExamID: started.ID, Answers: answersFor(exam, 0, 0)}, "alice")
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&model.Exam{}, exam.ID).Error)

	var questions, attempts, answers int64
	require.NoError(t, f.db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, f.db.Model(&model.UserExam{}).Count(&attempts).Error)
	require.NoError(t, f.db.Model(&model.UserAnswer{}).Count(&answers).Error)
	assert.Zero(t, questions)
	assert.Zero(t, attempts)
	assert.Zero(t, answers)
}
