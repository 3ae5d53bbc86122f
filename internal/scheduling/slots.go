package scheduling

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// SuggestedSlot свободный слот из стандартного каталога.
// Conflicts всегда пуст (предлагаются только валидные слоты),
// но поле сохранено для симметрии с ValidationResult.
type SuggestedSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Conflicts []string
	Warnings  []string
}

// catalogSlot один слот стандартной сетки занятий клуба
type catalogSlot struct {
	start types.TimeString
	end   types.TimeString
}

// slotCatalog стандартная сетка занятий: 8 слотов по 90 минут
// с перерывом на обед между 12:30 и 14:00. Порядок каталога определяет
// порядок предложений.
var slotCatalog = []catalogSlot{
	{start: "08:00", end: "09:30"},
	{start: "09:30", end: "11:00"},
	{start: "11:00", end: "12:30"},
	{start: "14:00", end: "15:30"},
	{start: "15:30", end: "17:00"},
	{start: "17:00", end: "18:30"},
	{start: "18:30", end: "20:00"},
	{start: "20:00", end: "21:30"},
}

// SuggestTimes подбирает альтернативные слоты для события, которое не
// удалось разместить. Для каждого слота каталога строится пробное событие
// с теми же преподавателем, кортом и составом учеников и прогоняется через
// ValidateEvent; собираются только полностью валидные слоты.
//
// targetDate переопределяет дату шаблона; нулевое значение оставляет дату
// шаблона. Возвращается не более domain.MaxSuggestedSlots предложений в
// порядке каталога; невалидные слоты пропускаются без прекращения поиска.
func SuggestTimes(template *domain.CalendarEvent, targetDate time.Time, existing []*domain.CalendarEvent, instructors InstructorDirectory) []SuggestedSlot {
	if template == nil {
		return []SuggestedSlot{}
	}

	date := template.Date
	if !targetDate.IsZero() {
		date = targetDate
	}

	suggestions := make([]SuggestedSlot, 0, domain.MaxSuggestedSlots)

	for _, slot := range slotCatalog {
		trial := *template
		trial.Date = date
		trial.StartTime = slot.start
		trial.EndTime = slot.end

		result := ValidateEvent(&trial, existing, instructors)
		if !result.IsValid() {
			continue
		}

		suggestions = append(suggestions, SuggestedSlot{
			StartTime: slot.start,
			EndTime:   slot.end,
			Conflicts: result.Conflicts,
			Warnings:  result.Warnings,
		})

		if len(suggestions) == domain.MaxSuggestedSlots {
			break
		}
	}

	return suggestions
}
