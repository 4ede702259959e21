package get_monthly_summary

import (
	"context"

	getMonthlySummary "github.com/m04kA/astroya-scheduling/internal/usecase/get_monthly_summary"
)

type GetMonthlySummaryUseCase interface {
	Execute(ctx context.Context, req *getMonthlySummary.Request) (*getMonthlySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
