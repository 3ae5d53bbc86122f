package get_student_sales

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/sales/models"
)

type SalesService interface {
	GetByStudentID(ctx context.Context, studentID int64) (*models.ListSalesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
