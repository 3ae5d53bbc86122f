package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	eventRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/event"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events/models"
)

// Service сервис для работы с календарем событий
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	s.logger.Info("GetByID: fetching event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// List получает события календаря с фильтрацией по периоду,
// преподавателю и корту
func (s *Service) List(ctx context.Context, req *models.ListEventsRequest) (*models.ListEventsResponse, error) {
	s.logger.Info("List: fetching events")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	events, err := s.eventRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d event(s)", len(events))
	return models.FromDomainEvents(events), nil
}

// Cancel отменяет событие календаря.
// Отмененное событие освобождает преподавателя, корт и учеников,
// но остается в календаре.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.EventResponse, error) {
	s.logger.Info("Cancel: cancelling event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Cancel: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Cancel: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if event.IsCancelled() {
		s.logger.Warn("Cancel: event id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}

	if err := s.eventRepo.UpdateState(ctx, id, domain.StateCancelled); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("Cancel: failed to update state for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	event.State = domain.StateCancelled

	s.logger.Info("Cancel: successfully cancelled event id=%d", id)
	return models.FromDomainEvent(event), nil
}

// Delete удаляет событие календаря безвозвратно
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting event id=%d", id)

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event id=%d", id)
	return nil
}
