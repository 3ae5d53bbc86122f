package validate_event

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	validateEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/validate_event"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// ValidateEventRequest HTTP request model.
// EventID указывается при редактировании существующего события.
type ValidateEventRequest struct {
	EventID      *int64  `json:"eventId,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Type         string  `json:"type"`
	InstructorID int64   `json:"instructorId"`
	CourtID      string  `json:"courtId"`
	StudentIDs   []int64 `json:"studentIds"`
}

// ValidationResponse HTTP response model
type ValidationResponse struct {
	IsValid     bool     `json:"isValid"`
	HasWarnings bool     `json:"hasWarnings"`
	Conflicts   []string `json:"conflicts"`
	Warnings    []string `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Неполные и некорректные поля не отклоняются на этом уровне: проверка
// расписания сама сообщает о недостающих данных в списке конфликтов.
func (r *ValidateEventRequest) ToUseCaseRequest() *validateEvent.Request {
	var date time.Time
	if parsed, err := time.Parse(domain.DateFormat, r.Date); err == nil {
		date = parsed
	}

	return &validateEvent.Request{
		EventID:      r.EventID,
		Date:         date,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
		Type:         domain.ClassType(r.Type),
		InstructorID: r.InstructorID,
		CourtID:      r.CourtID,
		StudentIDs:   r.StudentIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateEvent.Response) *ValidationResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []string{}
	}
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &ValidationResponse{
		IsValid:     resp.IsValid,
		HasWarnings: resp.HasWarnings,
		Conflicts:   conflicts,
		Warnings:    warnings,
	}
}
