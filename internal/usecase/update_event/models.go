package update_event

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// Request модель запроса на изменение события календаря.
// Событие обновляется целиком: запрос несет полный новый состав полей.
type Request struct {
	EventID      int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Type         domain.ClassType
	InstructorID int64
	CourtID      string
	StudentIDs   []int64
	Force        bool
}

// Response модель ответа с обновленным событием
type Response struct {
	ID           int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Type         domain.ClassType
	InstructorID int64
	CourtID      string
	StudentIDs   []int64
	State        domain.EventState

	// Предупреждения проверки расписания, не блокирующие сохранение
	Warnings []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(event *domain.CalendarEvent, warnings []string) *Response {
	return &Response{
		ID:           event.ID,
		Date:         event.Date,
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		Type:         event.Type,
		InstructorID: event.InstructorID,
		CourtID:      event.CourtID,
		StudentIDs:   event.StudentIDs,
		State:        event.State,
		Warnings:     warnings,
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}
