package domain

import (
	"slices"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// baseTimeSlots фиксированный набор слотов, одинаковый для всех дат
var baseTimeSlots = []types.TimeString{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// BaseTimeSlots возвращает копию базового набора слотов в хронологическом порядке
func BaseTimeSlots() []types.TimeString {
	return slices.Clone(baseTimeSlots)
}

// IsBaseTimeSlot проверяет, входит ли время в базовый набор
func IsBaseTimeSlot(t types.TimeString) bool {
	return slices.Contains(baseTimeSlots, t)
}

// NormalizeSlots сортирует и удаляет дубликаты
func NormalizeSlots(slots []types.TimeString) []types.TimeString {
	out := slices.Clone(slots)
	slices.Sort(out)
	return slices.Compact(out)
}

// CoversAllBaseSlots true, если в наборе присутствуют все базовые слоты
func CoversAllBaseSlots(slots []types.TimeString) bool {
	for _, base := range baseTimeSlots {
		if !slices.Contains(slots, base) {
			return false
		}
	}
	return true
}
