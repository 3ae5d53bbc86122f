package get_instructors

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors/models"
)

type InstructorsService interface {
	List(ctx context.Context, onlyActive bool) (*models.ListInstructorsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
