package students

import "errors"

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
