package sales

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж пакетов занятий
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.PackageSale) (*domain.PackageSale, error)
	GetByID(ctx context.Context, id int64) (*domain.PackageSale, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*domain.PackageSale, error)
}

// StudentRepository интерфейс репозитория учеников
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
