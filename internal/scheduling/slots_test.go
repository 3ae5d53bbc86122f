package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

func slotTimes(suggestions []SuggestedSlot) [][2]types.TimeString {
	result := make([][2]types.TimeString, len(suggestions))
	for i, s := range suggestions {
		result[i] = [2]types.TimeString{s.StartTime, s.EndTime}
	}
	return result
}

func TestSuggestTimesFreeDayReturnsFirstThree(t *testing.T) {
	suggestions := SuggestTimes(newCandidate(), time.Time{}, nil, testDirectory)

	require.Len(t, suggestions, 3)
	assert.Equal(t, [][2]types.TimeString{
		{"08:00", "09:30"},
		{"09:30", "11:00"},
		{"11:00", "12:30"},
	}, slotTimes(suggestions))
}

func TestSuggestTimesSkipsBusySlots(t *testing.T) {
	// Преподаватель и корт заняты 09:00-10:00; слоты 08:00-09:30 и
	// 09:30-11:00 пересекаются с этим интервалом, первым свободным
	// остаётся 11:00-12:30
	existing := []*domain.CalendarEvent{existingEvent(10, "09:00", "10:00")}

	suggestions := SuggestTimes(newCandidate(), time.Time{}, existing, testDirectory)

	require.Len(t, suggestions, 3)
	assert.Equal(t, [][2]types.TimeString{
		{"11:00", "12:30"},
		{"14:00", "15:30"},
		{"15:30", "17:00"},
	}, slotTimes(suggestions))
}

func TestSuggestTimesBoundaryAdjacentSlotAccepted(t *testing.T) {
	// Занятость 11:00-14:00: слот 09:30-11:00 граничит с ней ровно в 11:00
	// и должен быть принят (граничащие интервалы не пересекаются)
	existing := []*domain.CalendarEvent{existingEvent(10, "11:00", "14:00")}

	suggestions := SuggestTimes(newCandidate(), time.Time{}, existing, testDirectory)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, [][2]types.TimeString{
		{"08:00", "09:30"},
		{"09:30", "11:00"},
		{"14:00", "15:30"},
	}, slotTimes(suggestions))
}

func TestSuggestTimesNeverMoreThanThree(t *testing.T) {
	for _, existing := range [][]*domain.CalendarEvent{
		nil,
		{existingEvent(10, "09:00", "10:00")},
		{existingEvent(10, "08:00", "12:00"), existingEvent(11, "14:00", "18:00")},
	} {
		suggestions := SuggestTimes(newCandidate(), time.Time{}, existing, testDirectory)
		assert.LessOrEqual(t, len(suggestions), domain.MaxSuggestedSlots)
	}
}

// Каждый предложенный слот обязан повторно проходить полную проверку
func TestSuggestTimesSuggestionsRevalidate(t *testing.T) {
	existing := []*domain.CalendarEvent{
		existingEvent(10, "08:00", "10:00"),
		existingEvent(11, "15:00", "16:00"),
	}

	template := newCandidate()
	suggestions := SuggestTimes(template, time.Time{}, existing, testDirectory)

	require.NotEmpty(t, suggestions)
	for _, suggestion := range suggestions {
		assert.Empty(t, suggestion.Conflicts)

		trial := *template
		trial.StartTime = suggestion.StartTime
		trial.EndTime = suggestion.EndTime

		result := ValidateEvent(&trial, existing, testDirectory)
		assert.True(t, result.IsValid(),
			"suggested slot %s-%s must revalidate as valid", suggestion.StartTime, suggestion.EndTime)
	}
}

func TestSuggestTimesFullyBookedDay(t *testing.T) {
	existing := []*domain.CalendarEvent{existingEvent(10, "08:00", "21:30")}

	suggestions := SuggestTimes(newCandidate(), time.Time{}, existing, testDirectory)

	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggestTimesTargetDateOverride(t *testing.T) {
	// День шаблона полностью занят, целевая дата свободна
	existing := []*domain.CalendarEvent{existingEvent(10, "08:00", "21:30")}

	template := newCandidate()

	// Без переопределения даты предложений нет
	assert.Empty(t, SuggestTimes(template, time.Time{}, existing, testDirectory))

	// С переопределением на свободный день возвращаются первые три слота
	freeDay := monday.AddDate(0, 0, 2)
	suggestions := SuggestTimes(template, freeDay, existing, testDirectory)
	require.Len(t, suggestions, 3)
}

func TestSuggestTimesCarriesWarnings(t *testing.T) {
	// Шаблон Academy в субботу: слоты валидны, но несут предупреждение
	template := newCandidate()
	template.Type = domain.ClassAcademy
	template.Date = saturday

	suggestions := SuggestTimes(template, time.Time{}, nil, testDirectory)

	require.Len(t, suggestions, 3)
	for _, suggestion := range suggestions {
		assert.Empty(t, suggestion.Conflicts)
		assert.Contains(t, suggestion.Warnings,
			"Las clases de Academy normalmente no se programan en fin de semana")
	}
}

func TestSuggestTimesNilTemplate(t *testing.T) {
	assert.Empty(t, SuggestTimes(nil, time.Time{}, nil, testDirectory))
}
