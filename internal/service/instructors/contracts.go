package instructors

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// InstructorRepository интерфейс репозитория преподавателей
type InstructorRepository interface {
	Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Instructor, error)
	Update(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
