package update_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	eventRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/event"
	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

// UseCase use case для изменения события календаря
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

// Execute выполняет use case изменения события.
// Проверка конфликтов выполняется против событий нового дня,
// текущая версия события из проверки исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateEvent: id=%d, date=%s, time=%s-%s, instructor=%d, court=%s, force=%t",
		req.EventID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		req.InstructorID, req.CourtID, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Справочник имен преподавателей для сообщений о конфликтах
	directory, err := uc.instructorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	var (
		result  *domain.CalendarEvent
		checked *scheduling.ValidationResult
	)

	// 3. Чтение, проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Текущая версия события
		current, err := uc.eventRepo.GetByID(txCtx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("UpdateEvent: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			uc.logger.Error("UpdateEvent: failed to get event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}

		if current.IsCancelled() {
			uc.logger.Warn("UpdateEvent: event id=%d is cancelled", req.EventID)
			return ErrEventCancelled
		}

		candidate := &domain.CalendarEvent{
			ID:           current.ID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Type:         req.Type,
			InstructorID: req.InstructorID,
			CourtID:      req.CourtID,
			StudentIDs:   req.StudentIDs,
			State:        current.State,
		}

		// 3.2. Снимок активных событий нового дня с блокировкой (FOR UPDATE).
		// Проверка сама исключает событие с ID кандидата, поэтому при
		// переносе в пределах дня событие не конфликтует само с собой.
		existing, err := uc.eventRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("UpdateEvent: failed to get events for date: %v", err)
			return fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
		}

		// 3.3. Проверка конфликтов расписания
		checked = scheduling.ValidateEvent(candidate, existing, directory)

		if !checked.IsValid() && !req.Force {
			uc.logger.Warn("UpdateEvent: %d conflict(s) found, not forced", len(checked.Conflicts))
			return &ConflictError{Result: checked}
		}

		if !checked.IsValid() && req.Force {
			uc.logger.Warn("UpdateEvent: saving despite %d conflict(s) (forced)", len(checked.Conflicts))
		}

		// 3.4. Сохраняем обновленное событие
		updated, err := uc.eventRepo.Update(txCtx, candidate)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			uc.logger.Error("UpdateEvent: failed to update event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to update event: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateEvent: successfully updated event id=%d", result.ID)

	return toResponse(result, checked.Warnings), nil
}

// instructorDirectory строит справочник имен преподавателей
func (uc *UseCase) instructorDirectory(ctx context.Context) (scheduling.InstructorDirectory, error) {
	instructors, err := uc.instructorRepo.GetAll(ctx, false)
	if err != nil {
		uc.logger.Error("UpdateEvent: failed to get instructors: %v", err)
		return nil, fmt.Errorf("%w: failed to get instructors: %v", ErrInternal, err)
	}

	directory := make(scheduling.InstructorDirectory, len(instructors))
	for _, instructor := range instructors {
		directory[instructor.ID] = instructor.Name
	}

	return directory, nil
}
