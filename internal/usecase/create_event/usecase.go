package create_event

import (
	"context"
	"fmt"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

// UseCase use case для создания события календаря
type UseCase struct {
	eventRepo      EventRepository
	instructorRepo InstructorRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	instructorRepo InstructorRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:      eventRepo,
		instructorRepo: instructorRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания события.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции,
// чтобы две конкурирующие брони одного слота не прошли одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: date=%s, time=%s-%s, type=%s, instructor=%d, court=%s, students=%d, force=%t",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		req.Type, req.InstructorID, req.CourtID, len(req.StudentIDs), req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Справочник имен преподавателей для сообщений о конфликтах
	directory, err := uc.instructorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	candidate := &domain.CalendarEvent{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Type:         req.Type,
		InstructorID: req.InstructorID,
		CourtID:      req.CourtID,
		StudentIDs:   req.StudentIDs,
		State:        domain.StateScheduled,
	}

	var (
		result  *domain.CalendarEvent
		checked *scheduling.ValidationResult
	)

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Снимок активных событий дня с блокировкой (FOR UPDATE)
		existing, err := uc.eventRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to get events for date: %v", err)
			return fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
		}

		// 3.2. Проверка конфликтов расписания
		checked = scheduling.ValidateEvent(candidate, existing, directory)

		if !checked.IsValid() && !req.Force {
			uc.logger.Warn("CreateEvent: %d conflict(s) found, not forced", len(checked.Conflicts))
			return &ConflictError{Result: checked}
		}

		if !checked.IsValid() && req.Force {
			uc.logger.Warn("CreateEvent: saving despite %d conflict(s) (forced)", len(checked.Conflicts))
		}

		// 3.3. Сохраняем событие
		created, err := uc.eventRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateEvent: successfully created event id=%d", result.ID)

	return toResponse(result, checked.Warnings), nil
}

// instructorDirectory строит справочник имен преподавателей
func (uc *UseCase) instructorDirectory(ctx context.Context) (scheduling.InstructorDirectory, error) {
	instructors, err := uc.instructorRepo.GetAll(ctx, false)
	if err != nil {
		uc.logger.Error("CreateEvent: failed to get instructors: %v", err)
		return nil, fmt.Errorf("%w: failed to get instructors: %v", ErrInternal, err)
	}

	directory := make(scheduling.InstructorDirectory, len(instructors))
	for _, instructor := range instructors {
		directory[instructor.ID] = instructor.Name
	}

	return directory, nil
}
