package suggest_times

import (
	"context"
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
}

// InstructorRepository интерфейс репозитория преподавателей
type InstructorRepository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Instructor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
