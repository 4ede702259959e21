package list_rules

import (
	"slices"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// RuleResponse правило в ответе админки.
// available и horariosDisponiveis дублируют kind/times для старой панели.
type RuleResponse struct {
	ID                  string     `json:"id"`
	Date                string     `json:"date"`
	Kind                string     `json:"kind"`
	Times               []string   `json:"times"`
	Available           bool       `json:"available"`
	HorariosDisponiveis []string   `json:"horariosDisponiveis"`
	UpdatedBy           *string    `json:"updatedBy"`
	UpdatedAt           *time.Time `json:"updatedAt"`
}

// FromRules список правил по возрастанию даты
func FromRules(rules map[types.DateString]*domain.AvailabilityRule) []RuleResponse {
	dates := make([]types.DateString, 0, len(rules))
	for date := range rules {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	out := make([]RuleResponse, 0, len(dates))
	for _, date := range dates {
		out = append(out, fromRule(rules[date]))
	}
	return out
}

func fromRule(rule *domain.AvailabilityRule) RuleResponse {
	times := make([]string, len(rule.AllowedTimes))
	for i, t := range rule.AllowedTimes {
		times[i] = t.String()
	}

	resp := RuleResponse{
		ID:                  rule.Date.String(),
		Date:                rule.Date.String(),
		Kind:                string(rule.Kind),
		Times:               times,
		Available:           rule.Kind == domain.RuleSpecificTimes,
		HorariosDisponiveis: times,
		UpdatedBy:           rule.UpdatedBy,
	}
	if !rule.UpdatedAt.IsZero() {
		updatedAt := rule.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
