package update_student

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

type StudentsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateStudentRequest) (*models.StudentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
