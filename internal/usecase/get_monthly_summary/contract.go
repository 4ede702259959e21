package get_monthly_summary

import (
	"context"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// SummaryResolver сводка полностью недоступных дат месяца
type SummaryResolver interface {
	FullyUnavailableDates(ctx context.Context, year, month int) ([]types.DateString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
