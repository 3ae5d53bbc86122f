package suggest_times

import (
	"context"
	"fmt"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
)

// UseCase use case подбора свободных слотов для события.
// Подбор не изменяет данных и выполняется вне транзакции.
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

// Execute подбирает свободные слоты стандартной сетки на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestTimes: date=%s, type=%s, instructor=%d, court=%s, students=%d",
		req.Date.Format(domain.DateFormat), req.Type, req.InstructorID, req.CourtID, len(req.StudentIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок активных событий дня
	existing, err := uc.eventRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("SuggestTimes: failed to get events for date: %v", err)
		return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
	}

	// 3. Справочник имен преподавателей
	directory, err := uc.instructorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	// 4. Подбор слотов по шаблону события
	template := &domain.CalendarEvent{
		Date:         req.Date,
		Type:         req.Type,
		InstructorID: req.InstructorID,
		CourtID:      req.CourtID,
		StudentIDs:   req.StudentIDs,
	}

	suggested := scheduling.SuggestTimes(template, req.Date, existing, directory)

	slots := make([]Slot, 0, len(suggested))
	for _, s := range suggested {
		slots = append(slots, Slot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Warnings:  s.Warnings,
		})
	}

	uc.logger.Info("SuggestTimes: %d slot(s) suggested for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// instructorDirectory строит справочник имен преподавателей
func (uc *UseCase) instructorDirectory(ctx context.Context) (scheduling.InstructorDirectory, error) {
	instructors, err := uc.instructorRepo.GetAll(ctx, false)
	if err != nil {
		uc.logger.Error("SuggestTimes: failed to get instructors: %v", err)
		return nil, fmt.Errorf("%w: failed to get instructors: %v", ErrInternal, err)
	}

	directory := make(scheduling.InstructorDirectory, len(instructors))
	for _, instructor := range instructors {
		directory[instructor.ID] = instructor.Name
	}

	return directory, nil
}
