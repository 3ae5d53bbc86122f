package students

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	studentRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/student"
	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

// Service сервис для работы с учениками
type Service struct {
	studentRepo StudentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса учеников
func NewService(studentRepo StudentRepository, logger Logger) *Service {
	return &Service{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create добавляет ученика
func (s *Service) Create(ctx context.Context, req *models.CreateStudentRequest) (*models.StudentResponse, error) {
	s.logger.Info("Create: creating student name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty student name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	student := &domain.Student{
		Name:   strings.TrimSpace(req.Name),
		Email:  req.Email,
		Phone:  req.Phone,
		Level:  req.Level,
		Active: true,
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created student id=%d", created.ID)
	return models.FromDomainStudent(created), nil
}

// GetByID получает ученика по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("GetByID: student id=%d not found", id)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("GetByID: repository error for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStudent(student), nil
}

// List получает список учеников
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ListStudentsResponse, error) {
	students, err := s.studentRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStudents(students), nil
}

// Update изменяет данные ученика
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateStudentRequest) (*models.StudentResponse, error) {
	s.logger.Info("Update: updating student id=%d", id)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Update: empty student name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	student := &domain.Student{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Email:  req.Email,
		Phone:  req.Phone,
		Level:  req.Level,
		Active: req.Active,
	}

	updated, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Update: student id=%d not found", id)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("Update: repository error for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated student id=%d", id)
	return models.FromDomainStudent(updated), nil
}

// Deactivate помечает ученика неактивным
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating student id=%d", id)

	if err := s.studentRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Deactivate: student id=%d not found", id)
			return ErrStudentNotFound
		}
		s.logger.Error("Deactivate: repository error for student id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated student id=%d", id)
	return nil
}
