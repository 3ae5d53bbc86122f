package get_students

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

type StudentsService interface {
	List(ctx context.Context, onlyActive bool) (*models.ListStudentsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
