package students

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// StudentRepository интерфейс репозитория учеников
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
