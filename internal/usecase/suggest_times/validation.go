package suggest_times

import (
	"fmt"
)

// validateRequest валидирует шаблон события для подбора слотов
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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
