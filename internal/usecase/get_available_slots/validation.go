package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (types.DateString, error) {
	date := types.DateString(strings.TrimSpace(req.Date))
	if date == "" {
		return "", fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	if err := date.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return date, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date types.DateString, now time.Time) bool {
	return date.String() < types.NewDateString(now).String()
}
