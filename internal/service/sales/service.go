package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	studentRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/student"
	"github.com/padelcore/PCM-ScheduleService/internal/service/sales/models"
)

// Service сервис для работы с продажами пакетов занятий
type Service struct {
	saleRepo    SaleRepository
	studentRepo StudentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса продаж
func NewService(saleRepo SaleRepository, studentRepo StudentRepository, logger Logger) *Service {
	return &Service{
		saleRepo:    saleRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create регистрирует продажу пакета занятий ученику
func (s *Service) Create(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleResponse, error) {
	s.logger.Info("Create: creating sale for student=%d, package=%s", req.StudentID, req.PackageName)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Ученик должен существовать, продажи без владельца не регистрируются
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Create: student id=%d not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("Create: failed to get student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	sale := &domain.PackageSale{
		StudentID:     req.StudentID,
		PackageName:   strings.TrimSpace(req.PackageName),
		Classes:       req.Classes,
		Price:         req.Price,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	created, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created sale id=%d", created.ID)
	return models.FromDomainSale(created), nil
}

// GetByStudentID получает продажи ученика
func (s *Service) GetByStudentID(ctx context.Context, studentID int64) (*models.ListSalesResponse, error) {
	s.logger.Info("GetByStudentID: fetching sales for student=%d", studentID)

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("GetByStudentID: student id=%d not found", studentID)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("GetByStudentID: failed to get student id=%d: %v", studentID, err)
		return nil, fmt.Errorf("%w: GetByStudentID - repository error: %v", ErrInternal, err)
	}

	sales, err := s.saleRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		s.logger.Error("GetByStudentID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByStudentID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSales(sales), nil
}

// validateCreateRequest валидирует запрос на регистрацию продажи
func validateCreateRequest(req *models.CreateSaleRequest) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PackageName) == "" {
		return fmt.Errorf("%w: packageName is required", ErrInvalidInput)
	}
	if req.Classes <= 0 {
		return fmt.Errorf("%w: classes must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}
	return nil
}
