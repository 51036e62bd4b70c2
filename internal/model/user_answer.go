package model

// UserAnswer is a graded response. QuestionID has no foreign key:
// answers naming unknown questions are kept and marked incorrect.
type UserAnswer struct {
	ID             uint `gorm:"primarykey" json:"id"`
	UserExamID     uint `json:"userExamId" gorm:"not null;index"`
	QuestionID     uint `json:"questionId" gorm:"not null"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
}
