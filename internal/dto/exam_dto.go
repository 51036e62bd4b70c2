package dto

import "time"

// QuestionUploadDTO is one question of an uploaded exam file. The wire format names the
// text "question"; "questionText" (the form the API writes back) is accepted as well.
// Any client-sent "id" is ignored.
type QuestionUploadDTO struct {
	Question      string   `json:"question"`
	QuestionText  string   `json:"questionText"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

// ExamUploadDTO is the uploaded exam document. Owner and upload date are never read from it.
type ExamUploadDTO struct {
	ExamTitle       string              `json:"examTitle"`
	ExamDescription string              `json:"examDescription"`
	PassingScore    int                 `json:"passingScore"`
	TimeLimit       string              `json:"timeLimit"`
	Questions       []QuestionUploadDTO `json:"questions"`
}

type QuestionResponseDTO struct {
	ID            uint     `json:"id"`
	QuestionText  string   `json:"questionText"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

type ExamResponseDTO struct {
	ID               uint                  `json:"id"`
	ExamTitle        string                `json:"examTitle"`
	ExamDescription  string                `json:"examDescription"`
	PassingScore     int                   `json:"passingScore"`
	TimeLimit        string                `json:"timeLimit"`
	TimeLimitMinutes int                   `json:"timeLimitMinutes"`
	UserID           string                `json:"userId"`
	UploadDate       time.Time             `json:"uploadDate"`
	Questions        []QuestionResponseDTO `json:"questions"`
}

// ExamUploadResult is returned by ingestion instead of an error.
type ExamUploadResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Failure FailureKind      `json:"-"`
	Exam    *ExamResponseDTO `json:"exam,omitempty"`
}

type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureProcessing
)
