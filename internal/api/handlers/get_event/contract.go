package get_event

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/events/models"
)

type EventsService interface {
	GetByID(ctx context.Context, id int64) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
