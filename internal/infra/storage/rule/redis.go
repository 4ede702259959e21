package rule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const redisRulesKey = "availability_rules"

// redisDocument значение поля хэша правил
type redisDocument struct {
	Rule      string    `json:"rule"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RedisRepository хранит правила в одном хэше: поле - дата, значение - JSON документ
type RedisRepository struct {
	client redis.Cmdable
	key    string
}

// NewRedisRepository создает репозиторий правил поверх redis
func NewRedisRepository(client redis.Cmdable, keyPrefix string) *RedisRepository {
	return &RedisRepository{client: client, key: keyPrefix + redisRulesKey}
}

// GetAll возвращает все правила
func (r *RedisRepository) GetAll(ctx context.Context) (map[types.DateString]*domain.AvailabilityRule, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - hgetall: %v", ErrExecQuery, err)
	}

	rules := make(map[types.DateString]*domain.AvailabilityRule, len(fields))
	for date, raw := range fields {
		rule, err := decodeDocument(types.DateString(date), raw)
		if err != nil {
			return nil, err
		}
		rules[rule.Date] = rule
	}
	return rules, nil
}

// GetByDate возвращает правило на дату или ErrRuleNotFound
func (r *RedisRepository) GetByDate(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error) {
	raw, err := r.client.HGet(ctx, r.key, date.String()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - hget: %v", ErrExecQuery, err)
	}
	return decodeDocument(date, raw)
}

// Upsert полностью заменяет правило на дату
func (r *RedisRepository) Upsert(ctx context.Context, rule *domain.AvailabilityRule) error {
	value, err := domain.EncodeRuleValue(rule.Kind, rule.AllowedTimes)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode rule: %v", ErrBuildQuery, err)
	}

	raw, err := json.Marshal(redisDocument{Rule: value, UpdatedBy: rule.UpdatedBy, UpdatedAt: rule.UpdatedAt.UTC()})
	if err != nil {
		return fmt.Errorf("%w: Upsert - marshal document: %v", ErrBuildQuery, err)
	}

	if err := r.client.HSet(ctx, r.key, rule.Date.String(), raw).Err(); err != nil {
		return fmt.Errorf("%w: Upsert - hset: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет правило, true если оно было
func (r *RedisRepository) Delete(ctx context.Context, date types.DateString) (bool, error) {
	removed, err := r.client.HDel(ctx, r.key, date.String()).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - hdel: %v", ErrExecQuery, err)
	}
	return removed > 0, nil
}

func decodeDocument(date types.DateString, raw string) (*domain.AvailabilityRule, error) {
	var doc redisDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: date=%s: %v", ErrDecodeRule, date, err)
	}

	kind, times, err := domain.DecodeRuleValue(doc.Rule)
	if err != nil {
		return nil, fmt.Errorf("%w: date=%s: %v", ErrDecodeRule, date, err)
	}

	return &domain.AvailabilityRule{
		Date:         date,
		Kind:         kind,
		AllowedTimes: times,
		UpdatedBy:    doc.UpdatedBy,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
