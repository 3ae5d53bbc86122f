package instructors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	instructorRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/instructor"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors/models"
)

// Service сервис для работы с преподавателями
type Service struct {
	instructorRepo InstructorRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса преподавателей
func NewService(instructorRepo InstructorRepository, logger Logger) *Service {
	return &Service{
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Create добавляет преподавателя
func (s *Service) Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.InstructorResponse, error) {
	s.logger.Info("Create: creating instructor name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty instructor name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	instructor := &domain.Instructor{
		Name:   strings.TrimSpace(req.Name),
		Email:  req.Email,
		Phone:  req.Phone,
		Active: true,
	}

	created, err := s.instructorRepo.Create(ctx, instructor)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created instructor id=%d", created.ID)
	return models.FromDomainInstructor(created), nil
}

// GetByID получает преподавателя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.InstructorResponse, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("GetByID: instructor id=%d not found", id)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("GetByID: repository error for instructor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructor(instructor), nil
}

// List получает список преподавателей
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ListInstructorsResponse, error) {
	instructors, err := s.instructorRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructors(instructors), nil
}

// Update изменяет данные преподавателя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateInstructorRequest) (*models.InstructorResponse, error) {
	s.logger.Info("Update: updating instructor id=%d", id)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Update: empty instructor name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	instructor := &domain.Instructor{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Email:  req.Email,
		Phone:  req.Phone,
		Active: req.Active,
	}

	updated, err := s.instructorRepo.Update(ctx, instructor)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("Update: instructor id=%d not found", id)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("Update: repository error for instructor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated instructor id=%d", id)
	return models.FromDomainInstructor(updated), nil
}

// Deactivate помечает преподавателя неактивным.
// События с его участием остаются в календаре.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating instructor id=%d", id)

	if err := s.instructorRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("Deactivate: instructor id=%d not found", id)
			return ErrInstructorNotFound
		}
		s.logger.Error("Deactivate: repository error for instructor id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated instructor id=%d", id)
	return nil
}
