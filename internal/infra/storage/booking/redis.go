package booking

import (
	"context"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const redisBookedPrefix = "booked_slots:"

// RedisRepository хранит занятые слоты в множестве на каждую дату
type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRepository создает репозиторий бронирований поверх redis
func NewRedisRepository(client redis.Cmdable, keyPrefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: keyPrefix + redisBookedPrefix}
}

// GetByDate возвращает занятые слоты на дату в порядке возрастания
func (r *RedisRepository) GetByDate(ctx context.Context, date types.DateString) ([]types.TimeString, error) {
	members, err := r.client.SMembers(ctx, r.key(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - smembers: %v", ErrExecQuery, err)
	}

	slots := make([]types.TimeString, 0, len(members))
	for _, m := range members {
		slots = append(slots, types.TimeString(m))
	}
	slices.Sort(slots)
	return slots, nil
}

// Reserve атомарно добавляет слот: SADD возвращает 1 только для нового элемента
func (r *RedisRepository) Reserve(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error) {
	added, err := r.client.SAdd(ctx, r.key(date), slot.String()).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - sadd: %v", ErrExecQuery, err)
	}
	return added == 1, nil
}

func (r *RedisRepository) key(date types.DateString) string {
	return r.prefix + date.String()
}
