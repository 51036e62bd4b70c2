package model

import (
	"time"
)

// Exam is immutable once uploaded; there is no update or delete path.
type Exam struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	ExamTitle       string     `json:"examTitle" gorm:"not null"`
	ExamDescription string     `json:"examDescription" gorm:"type:text"`
	PassingScore    int        `json:"passingScore"`
	TimeLimit       string     `json:"timeLimit"` // free-form, e.g. "60 minutes"
	UserID          string     `json:"userId" gorm:"not null;index"`
	UploadDate      time.Time  `json:"uploadDate" gorm:"not null;index"`
	Questions       []Question `json:"questions" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}
