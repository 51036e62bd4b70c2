package service

import (
	"math"

	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/lshigami/egzamapp/internal/model"
)

// GradeAnswers marks every submitted answer against the exam's questions.
// Answers naming an unknown question are kept with IsCorrect=false. A question
// contributes to the correct count at most once, however often it was answered.
func GradeAnswers(questions []model.Question, submitted []dto.SubmittedAnswerDTO) ([]model.UserAnswer, int) {
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	graded := make([]model.UserAnswer, 0, len(submitted))
	counted := make(map[uint]bool, len(submitted))
	correct := 0
	for _, a := range submitted {
		ua := model.UserAnswer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
		}
		if q, ok := byID[a.QuestionID]; ok {
			ua.IsCorrect = a.SelectedAnswer == q.CorrectAnswer
			if ua.IsCorrect && !counted[q.ID] {
				counted[q.ID] = true
				correct++
			}
		}
		graded = append(graded, ua)
	}
	return graded, correct
}

// ComputeScore returns correct/total as a whole percentage, rounding half to even.
// Unanswered questions count against the score. An exam without questions scores 0.
func ComputeScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(correct) / float64(total) * 100))
}
