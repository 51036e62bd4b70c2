package dto

import "time"

type SubmittedAnswerDTO struct {
	QuestionID     uint `json:"questionId"`
	SelectedAnswer int  `json:"selectedAnswer"`
}

// ExamSubmissionDTO is the body of POST /exams/submit.
type ExamSubmissionDTO struct {
	UserExamID uint                 `json:"userExamId" binding:"required"`
	Answers    []SubmittedAnswerDTO `json:"answers" binding:"dive"`
}

type UserAnswerResponseDTO struct {
	ID             uint `json:"id"`
	QuestionID     uint `json:"questionId"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
}

type UserExamResponseDTO struct {
	ID        uint                    `json:"id"`
	UserID    string                  `json:"userId"`
	ExamID    uint                    `json:"examId"`
	StartTime time.Time               `json:"startTime"`
	EndTime   *time.Time              `json:"endTime"`
	Score     int                     `json:"score"`
	Completed bool                    `json:"completed"`
	Answers   []UserAnswerResponseDTO `json:"answers"`
}
