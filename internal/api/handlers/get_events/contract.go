package get_events

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/events/models"
)

type EventsService interface {
	List(ctx context.Context, req *models.ListEventsRequest) (*models.ListEventsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
