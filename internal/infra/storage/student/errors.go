package student

import "errors"

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = errors.New("student.repository: student not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("student.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("student.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("student.repository: failed to scan row")
)
