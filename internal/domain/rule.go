package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// RuleKind тип правила доступности
type RuleKind string

const (
	// RuleFullyUnavailable день полностью недоступен
	RuleFullyUnavailable RuleKind = "UNAVAILABLE"
	// RuleSpecificTimes доступны только перечисленные слоты
	RuleSpecificTimes RuleKind = "SPECIFIC_TIMES"
)

// RuleValueUnavailable сохраненное значение правила "день недоступен"
const RuleValueUnavailable = "UNAVAILABLE"

// SeedActor автор правил, загруженных из seed-файла
const SeedActor = "system (seed)"

// AvailabilityRule правило доступности на конкретную дату.
// Отсутствие правила означает отсутствие ограничений.
type AvailabilityRule struct {
	Date         types.DateString
	Kind         RuleKind
	AllowedTimes []types.TimeString // только для RuleSpecificTimes, отсортированы и без дубликатов
	UpdatedBy    *string
	UpdatedAt    time.Time
}

// NewRule собирает правило и проверяет инварианты
func NewRule(date types.DateString, kind RuleKind, times []types.TimeString) (*AvailabilityRule, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rule := &AvailabilityRule{Date: date, Kind: kind}

	switch kind {
	case RuleFullyUnavailable:
		return rule, nil
	case RuleSpecificTimes:
		if len(times) == 0 {
			return nil, fmt.Errorf("%w: specific times rule requires at least one time", ErrValidation)
		}
		for _, t := range times {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
		}
		rule.AllowedTimes = NormalizeSlots(times)
		return rule, nil
	default:
		return nil, fmt.Errorf("%w: unknown rule kind %q", ErrValidation, kind)
	}
}

// UnavailableSlots слоты, закрытые самим правилом (без учета бронирований).
// Время вне базового набора не добавляет доступности.
func (r *AvailabilityRule) UnavailableSlots() []types.TimeString {
	if r == nil {
		return nil
	}

	switch r.Kind {
	case RuleFullyUnavailable:
		return BaseTimeSlots()
	case RuleSpecificTimes:
		out := make([]types.TimeString, 0, len(baseTimeSlots))
		for _, base := range baseTimeSlots {
			if !slices.Contains(r.AllowedTimes, base) {
				out = append(out, base)
			}
		}
		return out
	default:
		return nil
	}
}

// Clone глубокая копия
func (r *AvailabilityRule) Clone() *AvailabilityRule {
	if r == nil {
		return nil
	}
	c := *r
	c.AllowedTimes = slices.Clone(r.AllowedTimes)
	if r.UpdatedBy != nil {
		by := *r.UpdatedBy
		c.UpdatedBy = &by
	}
	return &c
}

// EncodeRuleValue кодирует правило в сохраняемое значение: "UNAVAILABLE" или JSON-массив времени
func EncodeRuleValue(kind RuleKind, times []types.TimeString) (string, error) {
	if kind == RuleFullyUnavailable {
		return RuleValueUnavailable, nil
	}
	if kind != RuleSpecificTimes {
		return "", fmt.Errorf("%w: unknown rule kind %q", ErrValidation, kind)
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeRuleValue обратная операция к EncodeRuleValue
func DecodeRuleValue(value string) (RuleKind, []types.TimeString, error) {
	if value == RuleValueUnavailable {
		return RuleFullyUnavailable, nil, nil
	}

	var times []types.TimeString
	if err := json.Unmarshal([]byte(value), &times); err != nil {
		return "", nil, fmt.Errorf("decode rule value %q: %w", value, err)
	}
	return RuleSpecificTimes, times, nil
}
