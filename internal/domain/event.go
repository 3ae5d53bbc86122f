package domain

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// ClassType represents the kind of class being scheduled.
// The display strings are part of the UI contract and are persisted as-is.
type ClassType string

const (
	ClassIndividual ClassType = "Individual class"
	ClassGroup      ClassType = "Group class"
	ClassTraining   ClassType = "Training"
	ClassAcademy    ClassType = "Academy"
)

// AllClassTypes lists every supported class type
var AllClassTypes = []ClassType{
	ClassIndividual,
	ClassGroup,
	ClassTraining,
	ClassAcademy,
}

// IsValid returns true if the value is one of the supported class types
func (t ClassType) IsValid() bool {
	for _, known := range AllClassTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EventState represents the confirmation status of a calendar event.
// The conflict logic does not consult it; cancelled events are simply
// excluded from the scheduling snapshot.
type EventState string

const (
	StateScheduled EventState = "scheduled"
	StateConfirmed EventState = "confirmed"
	StateCancelled EventState = "cancelled"
)

// ActiveStates are the states that occupy instructor, court and students
var ActiveStates = []EventState{
	StateScheduled,
	StateConfirmed,
}

// IsValid returns true if the value is one of the supported event states
func (s EventState) IsValid() bool {
	return s == StateScheduled || s == StateConfirmed || s == StateCancelled
}

// CalendarEvent represents a class on the club calendar.
// ID == 0 marks a candidate that has not been persisted yet.
type CalendarEvent struct {
	ID           int64
	Date         time.Time // calendar day; time-of-day is ignored
	StartTime    types.TimeString
	EndTime      types.TimeString
	Type         ClassType
	InstructorID int64
	CourtID      string // court display code, e.g. "Pista 1"
	StudentIDs   []int64
	State        EventState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew returns true if the event has not been persisted yet
func (e *CalendarEvent) IsNew() bool {
	return e.ID == 0
}

// IsCancelled returns true if the event no longer occupies its slot
func (e *CalendarEvent) IsCancelled() bool {
	return e.State == StateCancelled
}

// HasStudent returns true if the given student is on the event roster
func (e *CalendarEvent) HasStudent(studentID int64) bool {
	for _, id := range e.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// EventsFilter controls calendar listing queries
type EventsFilter struct {
	From             *time.Time // start of the period (inclusive)
	To               *time.Time // end of the period (inclusive)
	InstructorID     *int64     // filter by instructor
	CourtID          *string    // filter by court
	IncludeCancelled bool       // include cancelled events in the listing
}
