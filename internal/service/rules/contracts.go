package rules

import (
	"context"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetAll(ctx context.Context) (map[types.DateString]*domain.AvailabilityRule, error)
	GetByDate(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error)
	Upsert(ctx context.Context, rule *domain.AvailabilityRule) error
	Delete(ctx context.Context, date types.DateString) (bool, error)
}

// Resetter хранилище, которое умеет очищаться (только in-memory драйвер)
type Resetter interface {
	Reset(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
