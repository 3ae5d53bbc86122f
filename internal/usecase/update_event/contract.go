package update_event

import (
	"context"
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
}

// InstructorRepository интерфейс репозитория преподавателей
type InstructorRepository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Instructor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
