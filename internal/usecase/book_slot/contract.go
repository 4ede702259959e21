package book_slot

import (
	"context"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// AvailabilityResolver вычисление недоступных слотов (строгий вариант, без fail-safe)
type AvailabilityResolver interface {
	Resolve(ctx context.Context, date types.DateString) ([]types.TimeString, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Reserve атомарно добавляет слот, false если слот уже был занят
	Reserve(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error)
}

// MetricsRecorder счетчик попыток бронирования
type MetricsRecorder interface {
	IncBookingAttempt(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
