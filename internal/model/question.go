package model

import (
	"gorm.io/datatypes"
)

type Question struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	ExamID        uint                        `json:"examId" gorm:"not null;index"`
	Position      int                         `json:"-" gorm:"not null"` // upload order, drives display and grading order
	QuestionText  string                      `json:"questionText" gorm:"type:text;not null"`
	Type          string                      `json:"type"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer int                         `json:"correctAnswer"` // zero-based, not range-checked
	Difficulty    string                      `json:"difficulty"`
	Explanation   string                      `json:"explanation" gorm:"type:text"`
}
