package model

import (
	"time"
)

// UserExam is one attempt at an exam. It moves from in progress to completed exactly once.
type UserExam struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	UserID    string       `json:"userId" gorm:"not null;index"`
	ExamID    uint         `json:"examId" gorm:"not null;index"`
	Exam      *Exam        `json:"exam,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StartTime time.Time    `json:"startTime" gorm:"not null"`
	EndTime   *time.Time   `json:"endTime"`
	Score     int          `json:"score" gorm:"not null;default:0"`
	Completed bool         `json:"completed" gorm:"not null;default:false;index"`
	Answers   []UserAnswer `json:"answers" gorm:"foreignKey:UserExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
