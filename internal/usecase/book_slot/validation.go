package book_slot

import (
	"fmt"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// validateRequest валидирует дату и время
func validateRequest(date types.DateString, slot types.TimeString) error {
	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date: %v", domain.ErrValidation, err)
	}

	if slot.IsZero() {
		return fmt.Errorf("%w: time is required", domain.ErrValidation)
	}

	if err := slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", domain.ErrValidation, err)
	}

	return nil
}
