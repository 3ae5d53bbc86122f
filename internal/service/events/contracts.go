package events

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error)
	GetWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error)
	UpdateState(ctx context.Context, id int64, state domain.EventState) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
