package create_instructor

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors/models"
)

type InstructorsService interface {
	Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
