package get_monthly_summary

import (
	"context"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// UseCase сводка по месяцу для календаря на сайте
type UseCase struct {
	resolver SummaryResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver SummaryResolver, logger Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case. Дни, по которым хранилище недоступно, попадают в сводку как закрытые.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dates, err := uc.resolver.FullyUnavailableDates(ctx, req.Year, req.Month)
	if err != nil {
		uc.logger.Warn("GetMonthlySummary: year=%d, month=%d: %v", req.Year, req.Month, err)
		return nil, err
	}
	if dates == nil {
		dates = []types.DateString{}
	}

	return &Response{
		Year:                  req.Year,
		Month:                 req.Month,
		FullyUnavailableDates: dates,
	}, nil
}
