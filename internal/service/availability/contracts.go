package availability

import (
	"context"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// RuleReader источник правил доступности. nil без ошибки - правила на дату нет
type RuleReader interface {
	GetRule(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error)
}

// BookingReader источник занятых слотов
type BookingReader interface {
	GetByDate(ctx context.Context, date types.DateString) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
