package set_rule

import (
	"context"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

type RulesService interface {
	SetRule(ctx context.Context, date types.DateString, kind domain.RuleKind, times []types.TimeString, actorEmail string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
