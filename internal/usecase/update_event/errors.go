package update_event

import (
	"errors"
	"strings"

	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_event: invalid input data")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("update_event: event not found")

	// ErrEventCancelled возвращается при попытке изменить отмененное событие
	ErrEventCancelled = errors.New("update_event: event is cancelled")

	// ErrScheduleConflict возвращается, когда новое расписание события
	// конфликтует с другими событиями и сохранение не форсировано
	ErrScheduleConflict = errors.New("update_event: schedule conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_event: internal error")
)

// ConflictError несет полный результат проверки расписания.
// Совместима с errors.Is(err, ErrScheduleConflict).
type ConflictError struct {
	Result *scheduling.ValidationResult
}

func (e *ConflictError) Error() string {
	return "update_event: schedule conflict: " + strings.Join(e.Result.Conflicts, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
