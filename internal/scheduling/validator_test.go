package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

var (
	// 2025-09-01 — понедельник, 2025-09-06 — суббота
	monday   = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)

	testDirectory = InstructorDirectory{
		1: "Carlos Gómez",
		2: "Lucía Fernández",
	}
)

// newCandidate возвращает валидное индивидуальное занятие 09:00-10:00
// в понедельник; тесты модифицируют нужные поля
func newCandidate() *domain.CalendarEvent {
	return &domain.CalendarEvent{
		Date:         monday,
		StartTime:    "09:00",
		EndTime:      "10:00",
		Type:         domain.ClassIndividual,
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
		State:        domain.StateScheduled,
	}
}

func existingEvent(id int64, start, end types.TimeString) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:           id,
		Date:         monday,
		StartTime:    start,
		EndTime:      end,
		Type:         domain.ClassIndividual,
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
		State:        domain.StateConfirmed,
	}
}

func TestValidateEventNoConflicts(t *testing.T) {
	result := ValidateEvent(newCandidate(), nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.HasWarnings())
}

func TestValidateEventMissingRequiredData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CalendarEvent)
	}{
		{"zero date", func(e *domain.CalendarEvent) { e.Date = time.Time{} }},
		{"empty start time", func(e *domain.CalendarEvent) { e.StartTime = "" }},
		{"empty end time", func(e *domain.CalendarEvent) { e.EndTime = "" }},
		{"malformed start time", func(e *domain.CalendarEvent) { e.StartTime = "9h30" }},
		{"malformed end time", func(e *domain.CalendarEvent) { e.EndTime = "25:99" }},
		{"no instructor", func(e *domain.CalendarEvent) { e.InstructorID = 0 }},
		{"no court", func(e *domain.CalendarEvent) { e.CourtID = "" }},
		{"no students", func(e *domain.CalendarEvent) { e.StudentIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := newCandidate()
			tt.mutate(candidate)

			result := ValidateEvent(candidate, nil, testDirectory)

			require.False(t, result.IsValid())
			// Ровно один общий конфликт, дальнейшие проверки не выполняются
			assert.Equal(t, []string{"Faltan datos requeridos"}, result.Conflicts)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestValidateEventNilCandidate(t *testing.T) {
	result := ValidateEvent(nil, nil, testDirectory)

	assert.False(t, result.IsValid())
	assert.Equal(t, []string{"Faltan datos requeridos"}, result.Conflicts)
}

func TestValidateEventEndBeforeStart(t *testing.T) {
	candidate := newCandidate()
	candidate.StartTime = "10:00"
	candidate.EndTime = "09:00"

	result := ValidateEvent(candidate, nil, testDirectory)

	require.False(t, result.IsValid())
	assert.Contains(t, result.Conflicts, "La hora de fin debe ser posterior a la hora de inicio")
	// Отрицательная длительность дополнительно нарушает минимум
	assert.Contains(t, result.Conflicts, "La duración mínima de una clase es 30 minutos")
}

func TestValidateEventInstructorConflict(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}

	candidate := newCandidate()
	candidate.StartTime = "09:30"
	candidate.EndTime = "10:30"
	candidate.CourtID = "Pista 2"
	candidate.StudentIDs = []int64{200}

	result := ValidateEvent(candidate, existing, testDirectory)

	require.False(t, result.IsValid())
	assert.Equal(t,
		[]string{"El profesor Carlos Gómez ya tiene una clase programada en este horario"},
		result.Conflicts)
}

func TestValidateEventInstructorNameFallsBackToID(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}
	existing[0].InstructorID = 77

	candidate := newCandidate()
	candidate.InstructorID = 77
	candidate.CourtID = "Pista 2"
	candidate.StudentIDs = []int64{200}

	result := ValidateEvent(candidate, existing, InstructorDirectory{})

	require.False(t, result.IsValid())
	assert.Equal(t,
		[]string{"El profesor 77 ya tiene una clase programada en este horario"},
		result.Conflicts)
}

func TestValidateEventCourtConflict(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}

	candidate := newCandidate()
	candidate.InstructorID = 2
	candidate.StudentIDs = []int64{200}

	result := ValidateEvent(candidate, existing, testDirectory)

	require.False(t, result.IsValid())
	assert.Equal(t,
		[]string{"La Pista 1 ya está ocupada en este horario"},
		result.Conflicts)
}

func TestValidateEventStudentConflict(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}
	existing[0].StudentIDs = []int64{100, 101}

	candidate := newCandidate()
	candidate.Type = domain.ClassGroup
	candidate.InstructorID = 2
	candidate.CourtID = "Pista 2"
	candidate.StudentIDs = []int64{100, 101, 102} // два общих ученика

	result := ValidateEvent(candidate, existing, testDirectory)

	require.False(t, result.IsValid())
	// Одно общее сообщение, не по каждому ученику
	assert.Equal(t,
		[]string{"Uno o más alumnos ya tienen una clase programada en este horario"},
		result.Conflicts)
}

func TestValidateEventBackToBackDoesNotConflict(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}

	candidate := newCandidate()
	candidate.StartTime = "10:00"
	candidate.EndTime = "11:00"

	result := ValidateEvent(candidate, existing, testDirectory)

	assert.True(t, result.IsValid(), "touching boundary must not count as overlap")
	assert.Empty(t, result.Conflicts)
}

func TestValidateEventDifferentDayDoesNotConflict(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}
	existing[0].Date = monday.AddDate(0, 0, 1)

	result := ValidateEvent(newCandidate(), existing, testDirectory)

	assert.True(t, result.IsValid())
}

func TestValidateEventSelfExclusionOnEdit(t *testing.T) {
	stored := existingEvent(10, "09:00", "10:00")

	// Кандидат идентичен сохранённому событию, включая ID
	candidate := *stored

	result := ValidateEvent(&candidate, []*domain.CalendarEvent{stored}, testDirectory)

	assert.True(t, result.IsValid(), "an event must never conflict with itself")
	assert.Empty(t, result.Conflicts)
}

func TestValidateEventMinDuration(t *testing.T) {
	candidate := newCandidate()
	candidate.EndTime = "09:20"

	result := ValidateEvent(candidate, nil, testDirectory)

	require.False(t, result.IsValid())
	assert.Equal(t, []string{"La duración mínima de una clase es 30 minutos"}, result.Conflicts)
}

func TestValidateEventLongDurationWarning(t *testing.T) {
	candidate := newCandidate()
	candidate.EndTime = "12:30" // 210 минут

	result := ValidateEvent(candidate, nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.Equal(t, []string{"La clase tiene una duración muy larga (más de 3 horas)"}, result.Warnings)
}

func TestValidateEventOutsideClubHoursWarning(t *testing.T) {
	candidate := newCandidate()
	candidate.StartTime = "05:30"
	candidate.EndTime = "06:30"

	result := ValidateEvent(candidate, nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.True(t, result.HasWarnings())
	assert.Equal(t,
		[]string{"La clase está fuera del horario habitual del club (6:00 - 22:00)"},
		result.Warnings)
}

func TestValidateEventLateEveningWarning(t *testing.T) {
	candidate := newCandidate()
	candidate.StartTime = "21:30"
	candidate.EndTime = "22:30"

	result := ValidateEvent(candidate, nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.Contains(t, result.Warnings,
		"La clase está fuera del horario habitual del club (6:00 - 22:00)")
}

func TestValidateEventIndividualCapacity(t *testing.T) {
	candidate := newCandidate()
	candidate.StudentIDs = []int64{100, 101}

	result := ValidateEvent(candidate, nil, testDirectory)

	require.False(t, result.IsValid())
	assert.Equal(t, []string{"Las clases individuales solo pueden tener un alumno"}, result.Conflicts)
}

func TestValidateEventLargeGroupWarning(t *testing.T) {
	candidate := newCandidate()
	candidate.Type = domain.ClassGroup
	candidate.StudentIDs = []int64{100, 101, 102, 103, 104}

	result := ValidateEvent(candidate, nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.Equal(t,
		[]string{"Las clases grupales con más de 4 alumnos pueden ser difíciles de manejar"},
		result.Warnings)
}

func TestValidateEventAcademyWeekendWarning(t *testing.T) {
	candidate := newCandidate()
	candidate.Type = domain.ClassAcademy
	candidate.Date = saturday

	result := ValidateEvent(candidate, nil, testDirectory)

	assert.True(t, result.IsValid())
	assert.Equal(t,
		[]string{"Las clases de Academy normalmente no se programan en fin de semana"},
		result.Warnings)

	// То же занятие в будний день не вызывает предупреждения
	candidate.Date = monday
	result = ValidateEvent(candidate, nil, testDirectory)
	assert.Empty(t, result.Warnings)
}

// Конфликты и предупреждения накапливаются, проверки не прерываются
func TestValidateEventAccumulatesAllOutcomes(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "05:30", "06:30")}

	candidate := newCandidate()
	candidate.StartTime = "05:40"
	candidate.EndTime = "06:00" // 20 минут, до открытия клуба
	candidate.CourtID = "Pista 2"
	candidate.StudentIDs = []int64{200}

	result := ValidateEvent(candidate, existing, testDirectory)

	require.False(t, result.IsValid())
	assert.Equal(t, []string{
		"El profesor Carlos Gómez ya tiene una clase programada en este horario",
		"La duración mínima de una clase es 30 minutos",
	}, result.Conflicts)
	assert.Equal(t, []string{
		"La clase está fuera del horario habitual del club (6:00 - 22:00)",
	}, result.Warnings)
}

// Инвариант: IsValid всегда эквивалентен отсутствию конфликтов
func TestValidateEventIsValidInvariant(t *testing.T) {
	candidates := []*domain.CalendarEvent{
		newCandidate(),
		nil,
		func() *domain.CalendarEvent { c := newCandidate(); c.EndTime = "09:10"; return c }(),
		func() *domain.CalendarEvent { c := newCandidate(); c.StudentIDs = []int64{1, 2}; return c }(),
	}

	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}

	for _, candidate := range candidates {
		result := ValidateEvent(candidate, existing, testDirectory)
		assert.Equal(t, len(result.Conflicts) == 0, result.IsValid())
		assert.Equal(t, len(result.Warnings) > 0, result.HasWarnings())
	}
}
