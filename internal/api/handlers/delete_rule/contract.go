package delete_rule

import (
	"context"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

type RulesService interface {
	DeleteRule(ctx context.Context, date types.DateString) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
