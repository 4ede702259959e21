package get_monthly_summary

import (
	getMonthlySummary "github.com/m04kA/astroya-scheduling/internal/usecase/get_monthly_summary"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	Year                  int      `json:"year"`
	Month                 int      `json:"month"`
	FullyUnavailableDates []string `json:"fullyUnavailableDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthlySummary.Response) *SummaryResponse {
	dates := make([]string, len(resp.FullyUnavailableDates))
	for i, d := range resp.FullyUnavailableDates {
		dates[i] = d.String()
	}
	return &SummaryResponse{
		Year:                  resp.Year,
		Month:                 resp.Month,
		FullyUnavailableDates: dates,
	}
}
