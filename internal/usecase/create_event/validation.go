package create_event

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса.
// Содержательные проверки расписания выполняет scheduling.ValidateEvent -
// здесь отсекаются только запросы, с которыми проверка не имеет смысла.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown class type %q", ErrInvalidInput, string(req.Type))
	}

	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if len(req.StudentIDs) == 0 {
		return fmt.Errorf("%w: at least one student is required", ErrInvalidInput)
	}
	for _, id := range req.StudentIDs {
		if id <= 0 {
			return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
