package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type PingResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// DatabaseStatusDTO never carries error text or connection details.
type DatabaseStatusDTO struct {
	CanConnect     bool     `json:"canConnect"`
	Provider       string   `json:"provider"`
	Tables         []string `json:"tables"`
	ExamsCount     int64    `json:"examsCount"`
	QuestionsCount int64    `json:"questionsCount"`
	AttemptsCount  int64    `json:"attemptsCount"`
}
