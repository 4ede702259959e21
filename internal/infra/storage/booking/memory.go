package booking

import (
	"context"
	"slices"
	"sync"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// MemoryRepository хранит занятые слоты в памяти процесса
type MemoryRepository struct {
	mu     sync.Mutex
	booked map[types.DateString]map[types.TimeString]struct{}
}

// NewMemoryRepository создает пустое хранилище бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{booked: make(map[types.DateString]map[types.TimeString]struct{})}
}

// GetByDate возвращает занятые слоты на дату в порядке возрастания
func (r *MemoryRepository) GetByDate(_ context.Context, date types.DateString) ([]types.TimeString, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := make([]types.TimeString, 0, len(r.booked[date]))
	for slot := range r.booked[date] {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots, nil
}

// Reserve добавляет слот, если его еще нет. Проверка и запись под одной блокировкой
func (r *MemoryRepository) Reserve(_ context.Context, date types.DateString, slot types.TimeString) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.booked[date]
	if !ok {
		day = make(map[types.TimeString]struct{})
		r.booked[date] = day
	}
	if _, taken := day[slot]; taken {
		return false, nil
	}
	day[slot] = struct{}{}
	return true, nil
}

// Reset очищает хранилище
func (r *MemoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.booked = make(map[types.DateString]map[types.TimeString]struct{})
	return nil
}
