package validate_event

import (
	"context"

	validateEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/validate_event"
)

type ValidateEventUseCase interface {
	Execute(ctx context.Context, req *validateEvent.Request) (*validateEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
