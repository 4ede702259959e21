package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// AvailabilityResolver расчет занятых слотов на дату (без ошибок, при сбое все слоты заняты)
type AvailabilityResolver interface {
	UnavailableSlots(ctx context.Context, date types.DateString) []types.TimeString
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
