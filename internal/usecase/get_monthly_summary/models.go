package get_monthly_summary

import "github.com/m04kA/astroya-scheduling/pkg/types"

// Request модель запроса сводки за месяц
type Request struct {
	Year  int
	Month int // 1..12
}

// Response полностью недоступные даты месяца по возрастанию
type Response struct {
	Year                  int
	Month                 int
	FullyUnavailableDates []types.DateString
}
