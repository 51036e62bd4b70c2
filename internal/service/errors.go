package service

import "errors"

var (
	ErrExamNotFound         = errors.New("exam not found")
	ErrUserExamNotFound     = errors.New("user exam not found")
	ErrExamAlreadyCompleted = errors.New("exam already completed")
)
