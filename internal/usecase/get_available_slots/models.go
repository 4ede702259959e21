package get_available_slots

import (
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа с разбивкой слотов
type Response struct {
	Date             types.DateString
	UnavailableSlots []types.TimeString // отсортированы
	AvailableSlots   []types.TimeString // базовые слоты минус недоступные
	Slots            []Slot             // все базовые слоты по порядку
	IsPast           bool               // дата раньше сегодняшней в часовом поясе сервиса
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool
}
