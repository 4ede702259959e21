package rule

import (
	"context"
	"sync"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// MemoryRepository хранит правила в памяти процесса
type MemoryRepository struct {
	mu    sync.RWMutex
	rules map[types.DateString]*domain.AvailabilityRule
}

// NewMemoryRepository создает пустое хранилище правил
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rules: make(map[types.DateString]*domain.AvailabilityRule)}
}

// GetAll возвращает копии всех правил
func (r *MemoryRepository) GetAll(_ context.Context) (map[types.DateString]*domain.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[types.DateString]*domain.AvailabilityRule, len(r.rules))
	for date, rule := range r.rules {
		out[date] = rule.Clone()
	}
	return out, nil
}

// GetByDate возвращает копию правила или ErrRuleNotFound
func (r *MemoryRepository) GetByDate(_ context.Context, date types.DateString) (*domain.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[date]
	if !ok {
		return nil, ErrRuleNotFound
	}
	return rule.Clone(), nil
}

// Upsert полностью заменяет правило на дату
func (r *MemoryRepository) Upsert(_ context.Context, rule *domain.AvailabilityRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[rule.Date] = rule.Clone()
	return nil
}

// Delete удаляет правило, true если оно было
func (r *MemoryRepository) Delete(_ context.Context, date types.DateString) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rules[date]
	delete(r.rules, date)
	return ok, nil
}

// Reset очищает хранилище
func (r *MemoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = make(map[types.DateString]*domain.AvailabilityRule)
	return nil
}
