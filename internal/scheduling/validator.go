package scheduling

import (
	"fmt"
	"strconv"
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// Тексты конфликтов и предупреждений, отображаемые в календаре.
// Формулировки являются частью контракта с UI и не подлежат изменению.
const (
	msgMissingRequiredData = "Faltan datos requeridos"
	msgEndBeforeStart      = "La hora de fin debe ser posterior a la hora de inicio"
	msgInstructorBusy      = "El profesor %s ya tiene una clase programada en este horario"
	msgCourtBusy           = "La %s ya está ocupada en este horario"
	msgStudentBusy         = "Uno o más alumnos ya tienen una clase programada en este horario"
	msgOutsideClubHours    = "La clase está fuera del horario habitual del club (6:00 - 22:00)"
	msgMinDuration         = "La duración mínima de una clase es 30 minutos"
	msgLongDuration        = "La clase tiene una duración muy larga (más de 3 horas)"
	msgIndividualCapacity  = "Las clases individuales solo pueden tener un alumno"
	msgLargeGroup          = "Las clases grupales con más de 4 alumnos pueden ser difíciles de manejar"
	msgAcademyWeekend      = "Las clases de Academy normalmente no se programan en fin de semana"
)

// InstructorDirectory отображение ID преподавателя в отображаемое имя.
// Используется только для форматирования текстов конфликтов.
type InstructorDirectory map[int64]string

// Name возвращает отображаемое имя преподавателя.
// Если преподаватель не найден в справочнике, возвращает исходный ID.
func (d InstructorDirectory) Name(instructorID int64) string {
	if name, ok := d[instructorID]; ok && name != "" {
		return name
	}
	return strconv.FormatInt(instructorID, 10)
}

// ValidationResult результат проверки события календаря.
// Порядок сообщений фиксирован и соответствует порядку проверок.
type ValidationResult struct {
	Conflicts []string // блокирующие конфликты
	Warnings  []string // не блокирующие предупреждения
}

// IsValid возвращает true, если блокирующих конфликтов нет
func (r *ValidationResult) IsValid() bool {
	return len(r.Conflicts) == 0
}

// HasWarnings возвращает true, если есть хотя бы одно предупреждение
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ValidateEvent проверяет событие календаря на конфликты расписания и
// бизнес-правила клуба. Функция чистая: не изменяет входные данные и не
// выполняет I/O; все нарушения возвращаются как данные, а не ошибки.
//
// candidate - проверяемое событие (ID == 0 для нового события)
// existing - полный список событий; фильтрация по дню выполняется внутри
// instructors - справочник преподавателей для текстов конфликтов
func ValidateEvent(candidate *domain.CalendarEvent, existing []*domain.CalendarEvent, instructors InstructorDirectory) *ValidationResult {
	result := &ValidationResult{
		Conflicts: []string{},
		Warnings:  []string{},
	}

	// Без обязательных полей дальнейшие проверки не имеют смысла
	if missingRequiredFields(candidate) {
		result.Conflicts = append(result.Conflicts, msgMissingRequiredData)
		return result
	}

	// Формат гарантирован missingRequiredFields, ошибки здесь невозможны
	startMinutes, _ := candidate.StartTime.Minutes()
	endMinutes, _ := candidate.EndTime.Minutes()

	// 1. Порядок времени начала и окончания
	if endMinutes <= startMinutes {
		result.Conflicts = append(result.Conflicts, msgEndBeforeStart)
	}

	// 2. Оставляем только события того же дня, исключая само событие
	// (при редактировании событие не конфликтует с самим собой)
	sameDay := sameDayEvents(candidate, existing)

	// 3. Конфликт преподавателя
	for _, event := range sameDay {
		if event.InstructorID != candidate.InstructorID {
			continue
		}
		if overlapsCandidate(startMinutes, endMinutes, event) {
			result.Conflicts = append(result.Conflicts,
				fmt.Sprintf(msgInstructorBusy, instructors.Name(candidate.InstructorID)))
			break
		}
	}

	// 4. Конфликт корта
	for _, event := range sameDay {
		if event.CourtID != candidate.CourtID {
			continue
		}
		if overlapsCandidate(startMinutes, endMinutes, event) {
			result.Conflicts = append(result.Conflicts,
				fmt.Sprintf(msgCourtBusy, candidate.CourtID))
			break
		}
	}

	// 5. Конфликт учеников: одно общее сообщение, не по каждому ученику
	for _, event := range sameDay {
		if !sharesStudents(candidate, event) {
			continue
		}
		if overlapsCandidate(startMinutes, endMinutes, event) {
			result.Conflicts = append(result.Conflicts, msgStudentBusy)
			break
		}
	}

	// 6. Рабочие часы клуба: только предупреждение, не блокирует
	if startMinutes < domain.ClubOpeningMinutes || endMinutes > domain.ClubClosingMinutes {
		result.Warnings = append(result.Warnings, msgOutsideClubHours)
	}

	// 7. Длительность. Проверяется даже при неверном порядке времени:
	// отрицательная длительность дополнительно даст конфликт минимума.
	duration := endMinutes - startMinutes
	if duration < domain.MinClassDurationMinutes {
		result.Conflicts = append(result.Conflicts, msgMinDuration)
	}
	if duration > domain.MaxClassDurationMinutes {
		result.Warnings = append(result.Warnings, msgLongDuration)
	}

	// 8. Вместимость по типу класса
	if candidate.Type == domain.ClassIndividual && len(candidate.StudentIDs) > domain.MaxIndividualClassStudents {
		result.Conflicts = append(result.Conflicts, msgIndividualCapacity)
	}
	if candidate.Type == domain.ClassGroup && len(candidate.StudentIDs) > domain.GroupClassWarningThreshold {
		result.Warnings = append(result.Warnings, msgLargeGroup)
	}

	// 9. Занятия Academy по выходным: только предупреждение
	if candidate.Type == domain.ClassAcademy && isWeekend(candidate.Date) {
		result.Warnings = append(result.Warnings, msgAcademyWeekend)
	}

	return result
}

// missingRequiredFields проверяет наличие всех обязательных полей события.
// Невалидный формат времени приравнивается к отсутствующему полю.
func missingRequiredFields(candidate *domain.CalendarEvent) bool {
	if candidate == nil {
		return true
	}
	if candidate.Date.IsZero() {
		return true
	}
	if candidate.StartTime.IsZero() || candidate.StartTime.Validate() != nil {
		return true
	}
	if candidate.EndTime.IsZero() || candidate.EndTime.Validate() != nil {
		return true
	}
	if candidate.InstructorID == 0 {
		return true
	}
	if candidate.CourtID == "" {
		return true
	}
	if len(candidate.StudentIDs) == 0 {
		return true
	}
	return false
}

// sameDayEvents возвращает события того же календарного дня, что и candidate,
// исключая событие с тем же ID
func sameDayEvents(candidate *domain.CalendarEvent, existing []*domain.CalendarEvent) []*domain.CalendarEvent {
	result := make([]*domain.CalendarEvent, 0, len(existing))
	for _, event := range existing {
		if event == nil {
			continue
		}
		if !candidate.IsNew() && event.ID == candidate.ID {
			continue
		}
		if !isSameDay(candidate.Date, event.Date) {
			continue
		}
		result = append(result, event)
	}
	return result
}

// overlapsCandidate проверяет пересечение события с интервалом кандидата.
// События с неразбираемым временем пропускаются.
func overlapsCandidate(candidateStart, candidateEnd int, event *domain.CalendarEvent) bool {
	eventStart, err := event.StartTime.Minutes()
	if err != nil {
		return false
	}
	eventEnd, err := event.EndTime.Minutes()
	if err != nil {
		return false
	}
	return intervalsOverlap(candidateStart, candidateEnd, eventStart, eventEnd)
}

// sharesStudents проверяет непустое пересечение составов учеников
func sharesStudents(candidate, event *domain.CalendarEvent) bool {
	for _, studentID := range candidate.StudentIDs {
		if event.HasStudent(studentID) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
