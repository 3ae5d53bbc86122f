package create_student

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

type StudentsService interface {
	Create(ctx context.Context, req *models.CreateStudentRequest) (*models.StudentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
