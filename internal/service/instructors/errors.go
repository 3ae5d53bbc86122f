package instructors

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда преподаватель не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
