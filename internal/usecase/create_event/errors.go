package create_event

import (
	"errors"
	"strings"

	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrScheduleConflict возвращается, когда событие конфликтует с расписанием
	// и сохранение не форсировано
	ErrScheduleConflict = errors.New("create_event: schedule conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)

// ConflictError несет полный результат проверки расписания.
// Совместима с errors.Is(err, ErrScheduleConflict).
type ConflictError struct {
	Result *scheduling.ValidationResult
}

func (e *ConflictError) Error() string {
	return "create_event: schedule conflict: " + strings.Join(e.Result.Conflicts, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
