package domain

import "fmt"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConstraint = "CONSTRAINT_VIOLATION"
	CodeBadRequest = "BAD_REQUEST"
)

type DomainError struct {
	Code    string
	Message string
	// Field заполняется только для ошибок валидации
	Field string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - запрос не прошел проверку
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrConstraint - нарушено ограничение хранилища (unique, foreign key)
	ErrConstraint = &DomainError{
		Code:    CodeConstraint,
		Message: "constraint violation",
	}

	// ErrEmailExists - email участника уже занят
	ErrEmailExists = &DomainError{
		Code:    CodeConstraint,
		Message: "email already exists",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку валидации для конкретного поля
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s: %s", field, message),
		Field:   field,
	}
}

// NewConstraintError создает ошибку нарушения ограничения хранилища
func NewConstraintError(message string) *DomainError {
	return &DomainError{
		Code:    CodeConstraint,
		Message: message,
	}
}

// NewBadRequestError создает ошибку некорректного запроса
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
