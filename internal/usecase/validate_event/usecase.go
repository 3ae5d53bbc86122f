package validate_event

import (
	"context"
	"fmt"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

// UseCase use case проверки события на конфликты расписания.
// Проверка не изменяет данных и выполняется вне транзакции.
type UseCase struct {
	eventRepo      EventRepository
	instructorRepo InstructorRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(eventRepo EventRepository, instructorRepo InstructorRepository, logger Logger) *UseCase {
	return &UseCase{
		eventRepo:      eventRepo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Execute выполняет проверку кандидата против событий его дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateEvent: date=%s, time=%s-%s, instructor=%d, court=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.InstructorID, req.CourtID)

	var existing []*domain.CalendarEvent

	// Для пустой даты событие заведомо неполно, проверка конфликтов
	// по дню не требуется - валидатор сообщит о недостающих данных
	if !req.Date.IsZero() {
		events, err := uc.eventRepo.GetByDate(ctx, req.Date)
		if err != nil {
			uc.logger.Error("ValidateEvent: failed to get events for date: %v", err)
			return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
		}
		existing = events
	}

	directory, err := uc.instructorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	result := scheduling.ValidateEvent(req.candidate(), existing, directory)

	if !result.IsValid() {
		uc.logger.Warn("ValidateEvent: %d conflict(s) found", len(result.Conflicts))
	}

	return &Response{
		IsValid:     result.IsValid(),
		HasWarnings: result.HasWarnings(),
		Conflicts:   result.Conflicts,
		Warnings:    result.Warnings,
	}, nil
}

// instructorDirectory строит справочник имен преподавателей для сообщений
func (uc *UseCase) instructorDirectory(ctx context.Context) (scheduling.InstructorDirectory, error) {
	instructors, err := uc.instructorRepo.GetAll(ctx, false)
	if err != nil {
		uc.logger.Error("ValidateEvent: failed to get instructors: %v", err)
		return nil, fmt.Errorf("%w: failed to get instructors: %v", ErrInternal, err)
	}

	directory := make(scheduling.InstructorDirectory, len(instructors))
	for _, instructor := range instructors {
		directory[instructor.ID] = instructor.Name
	}

	return directory, nil
}
