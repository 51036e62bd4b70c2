package service

import (
	"testing"

	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/model"
	"github.com/stretchr/testify/assert"
)

func questionsWithAnswers(correct ...int) []model.Question {
	qs := make([]model.Question, len(correct))
	for i, c := range correct {
		qs[i] = model.Question{ID: uint(i + 1), CorrectAnswer: c}
	}
	return qs
}

func TestGradeAnswers(t *testing.T) {
	tests := []struct {
		name        string
		questions   []model.Question
		submitted   []dto.SubmittedAnswerDTO
		wantCorrect int
		wantFlags   []bool
	}{
		{
			name:      "three of four",
			questions: questionsWithAnswers(0, 1, 2, 3),
			submitted: []dto.SubmittedAnswerDTO{
				{QuestionID: 1, SelectedAnswer: 0},
				{QuestionID: 2, SelectedAnswer: 1},
				{QuestionID: 3, SelectedAnswer: 2},
				{QuestionID: 4, SelectedAnswer: 2},
			},
			wantCorrect: 3,
			wantFlags:   []bool{true, true, true, false},
		},
		{
			name:        "unknown question is kept and wrong",
			questions:   questionsWithAnswers(1),
			submitted:   []dto.SubmittedAnswerDTO{{QuestionID: 99, SelectedAnswer: 1}},
			wantCorrect: 0,
			wantFlags:   []bool{false},
		},
		{
			name:      "duplicate answers count once",
			questions: questionsWithAnswers(2, 0),
			submitted: []dto.SubmittedAnswerDTO{
				{QuestionID: 1, SelectedAnswer: 2},
				{QuestionID: 1, SelectedAnswer: 2},
			},
			wantCorrect: 1,
			wantFlags:   []bool{true, true},
		},
		{
			name:        "nothing submitted",
			questions:   questionsWithAnswers(0, 0),
			wantCorrect: 0,
			wantFlags:   []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded, correct := GradeAnswers(tt.questions, tt.submitted)
			assert.Equal(t, tt.wantCorrect, correct)

			flags := make([]bool, 0, len(graded))
			for i, g := range graded {
				assert.Equal(t, tt.submitted[i].QuestionID, g.QuestionID)
				assert.Equal(t, tt.submitted[i].SelectedAnswer, g.SelectedAnswer)
				flags = append(flags, g.IsCorrect)
			}
			assert.Equal(t, tt.wantFlags, flags)
		})
	}
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{3, 4, 75},
		{1, 2, 50},
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 12}, // 12.5 rounds to even
		{3, 8, 38}, // 37.5 rounds to even
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ComputeScore(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}
