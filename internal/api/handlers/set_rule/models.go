package set_rule

import (
	"errors"
	"strings"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// ErrMissingRule в теле нет ни kind, ни available
var ErrMissingRule = errors.New("set_rule: date and rule are required")

// SetRuleRequest HTTP request model.
// Поддерживает и старую форму {date, available, horariosDisponiveis}.
type SetRuleRequest struct {
	Date  string   `json:"date"`
	Kind  string   `json:"kind"`
	Times []string `json:"times"`

	Available           *bool    `json:"available"`
	HorariosDisponiveis []string `json:"horariosDisponiveis"`
}

// ToRule дата, вид правила и слоты.
// Старая форма: available=false -> UNAVAILABLE, иначе SPECIFIC_TIMES с horariosDisponiveis.
func (r *SetRuleRequest) ToRule() (types.DateString, domain.RuleKind, []types.TimeString, error) {
	date := types.DateString(strings.TrimSpace(r.Date))
	kind := domain.RuleKind(strings.ToUpper(strings.TrimSpace(r.Kind)))
	times := r.Times

	if kind == "" {
		if r.Available == nil {
			return "", "", nil, ErrMissingRule
		}
		if *r.Available {
			kind = domain.RuleSpecificTimes
			times = r.HorariosDisponiveis
		} else {
			kind = domain.RuleFullyUnavailable
		}
	}

	if date == "" {
		return "", "", nil, ErrMissingRule
	}

	out := make([]types.TimeString, 0, len(times))
	for _, t := range times {
		out = append(out, types.TimeString(strings.TrimSpace(t)))
	}
	return date, kind, out, nil
}
