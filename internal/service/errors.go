package service

import "errors"

var ErrValidation = errors.New("validation error")

// ValidationError - ошибка входных данных, сообщение отдается клиенту как есть
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrTitleRequired    = &ValidationError{Field: "title", Message: "title is required and must be a string"}
	ErrTitleEmpty       = &ValidationError{Field: "title", Message: "title must not be empty"}
	ErrInvalidID        = &ValidationError{Field: "id", Message: "id must be a positive integer"}
	ErrCompletedNotBool = &ValidationError{Field: "completed", Message: "completed must be a boolean"}
	ErrInvalidJSON      = &ValidationError{Message: "invalid json body"}
)
