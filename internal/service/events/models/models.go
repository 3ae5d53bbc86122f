package models

import (
	"errors"
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// ListEventsRequest запрос на получение событий календаря
type ListEventsRequest struct {
	From             *string `json:"from,omitempty"`         // Начало периода YYYY-MM-DD (опционально)
	To               *string `json:"to,omitempty"`           // Конец периода YYYY-MM-DD (опционально)
	InstructorID     *int64  `json:"instructorId,omitempty"` // Фильтр по преподавателю (опционально)
	CourtID          *string `json:"courtId,omitempty"`      // Фильтр по корту (опционально)
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListEventsRequest) ToDomainFilter() (domain.EventsFilter, error) {
	filter := domain.EventsFilter{
		InstructorID:     r.InstructorID,
		CourtID:          r.CourtID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.From != nil {
		from, err := time.Parse(domain.DateFormat, *r.From)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := time.Parse(domain.DateFormat, *r.To)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.To = &to
	}

	return filter, nil
}

// Response модели

// EventResponse событие календаря в ответе API
type EventResponse struct {
	ID           int64            `json:"id"`
	Date         string           `json:"date"` // YYYY-MM-DD
	StartTime    types.TimeString `json:"startTime"`
	EndTime      types.TimeString `json:"endTime"`
	Type         string           `json:"type"`
	InstructorID int64            `json:"instructorId"`
	CourtID      string           `json:"courtId"`
	StudentIDs   []int64          `json:"studentIds"`
	State        string           `json:"state"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ListEventsResponse список событий календаря
type ListEventsResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int              `json:"total"`
}

// FromDomainEvent конвертирует доменное событие в response
func FromDomainEvent(event *domain.CalendarEvent) *EventResponse {
	return &EventResponse{
		ID:           event.ID,
		Date:         event.Date.Format(domain.DateFormat),
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		Type:         string(event.Type),
		InstructorID: event.InstructorID,
		CourtID:      event.CourtID,
		StudentIDs:   event.StudentIDs,
		State:        string(event.State),
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}

// FromDomainEvents конвертирует список доменных событий в response
func FromDomainEvents(events []*domain.CalendarEvent) *ListEventsResponse {
	responses := make([]*EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, FromDomainEvent(event))
	}
	return &ListEventsResponse{
		Events: responses,
		Total:  len(responses),
	}
}
