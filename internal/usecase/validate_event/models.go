package validate_event

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// Request модель запроса на проверку события перед сохранением.
// EventID указывается при редактировании существующего события,
// чтобы оно не конфликтовало само с собой.
type Request struct {
	EventID      *int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Type         domain.ClassType
	InstructorID int64
	CourtID      string
	StudentIDs   []int64
}

// Response результат проверки расписания
type Response struct {
	IsValid     bool
	HasWarnings bool
	Conflicts   []string
	Warnings    []string
}

// candidate собирает доменное событие из запроса
func (r *Request) candidate() *domain.CalendarEvent {
	event := &domain.CalendarEvent{
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Type:         r.Type,
		InstructorID: r.InstructorID,
		CourtID:      r.CourtID,
		StudentIDs:   r.StudentIDs,
	}
	if r.EventID != nil {
		event.ID = *r.EventID
	}
	return event
}
