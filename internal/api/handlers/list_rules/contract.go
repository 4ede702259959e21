package list_rules

import (
	"context"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

type RulesService interface {
	GetAll(ctx context.Context) (map[types.DateString]*domain.AvailabilityRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
