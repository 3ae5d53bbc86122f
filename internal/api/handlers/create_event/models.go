package create_event

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	createEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/create_event"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Date         string  `json:"date"`      // "2025-09-01"
	StartTime    string  `json:"startTime"` // "09:00"
	EndTime      string  `json:"endTime"`   // "10:00"
	Type         string  `json:"type"`
	InstructorID int64   `json:"instructorId"`
	CourtID      string  `json:"courtId"`
	StudentIDs   []int64 `json:"studentIds"`
	Force        bool    `json:"force,omitempty"`
}

// EventResponse HTTP response model
type EventResponse struct {
	ID           int64    `json:"id"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Type         string   `json:"type"`
	InstructorID int64    `json:"instructorId"`
	CourtID      string   `json:"courtId"`
	StudentIDs   []int64  `json:"studentIds"`
	State        string   `json:"state"`
	Warnings     []string `json:"warnings"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ConflictResponse тело ответа 409 с результатом проверки расписания
type ConflictResponse struct {
	IsValid   bool     `json:"isValid"`
	Conflicts []string `json:"conflicts"`
	Warnings  []string `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEventRequest) ToUseCaseRequest() (*createEvent.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createEvent.Request{
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Type:         domain.ClassType(r.Type),
		InstructorID: r.InstructorID,
		CourtID:      r.CourtID,
		StudentIDs:   r.StudentIDs,
		Force:        r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createEvent.Response) *EventResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &EventResponse{
		ID:           resp.ID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Type:         string(resp.Type),
		InstructorID: resp.InstructorID,
		CourtID:      resp.CourtID,
		StudentIDs:   resp.StudentIDs,
		State:        string(resp.State),
		Warnings:     warnings,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
