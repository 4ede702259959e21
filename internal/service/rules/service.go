package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// Service сервис управления правилами доступности
type Service struct {
	ruleRepo RuleRepository
	resetter []Resetter
	seed     map[types.DateString]SeedRule
	logger   Logger
	now      func() time.Time
}

// Option настройка сервиса
type Option func(*Service)

// WithClock подменяет источник времени для updatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithResetters включает сброс данных: все переданные хранилища очищаются при Reset
func WithResetters(resetters ...Resetter) Option {
	return func(s *Service) {
		s.resetter = append(s.resetter, resetters...)
	}
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, logger Logger, opts ...Option) *Service {
	s := &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll возвращает снимок всех правил. Изменение результата не влияет на хранилище
func (s *Service) GetAll(ctx context.Context) (map[types.DateString]*domain.AvailabilityRule, error) {
	rules, err := s.ruleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll: %v", domain.ErrStoreUnavailable, err)
	}

	snapshot := make(map[types.DateString]*domain.AvailabilityRule, len(rules))
	for date, rule := range rules {
		snapshot[date] = rule.Clone()
	}
	return snapshot, nil
}

// GetRule возвращает правило на дату, nil если правила нет
func (s *Service) GetRule(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error) {
	rule, err := s.ruleRepo.GetByDate(ctx, date)
	if errors.Is(err, ruleRepo.ErrRuleNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRule date=%s: %v", domain.ErrStoreUnavailable, date, err)
	}
	return rule, nil
}

// SetRule создает или полностью заменяет правило на дату
func (s *Service) SetRule(ctx context.Context, date types.DateString, kind domain.RuleKind, times []types.TimeString, actorEmail string) error {
	s.logger.Info("SetRule: date=%s kind=%s times=%v actor=%s", date, kind, times, actorEmail)

	// 1. Проверяем дату и правило
	rule, err := domain.NewRule(date, kind, times)
	if err != nil {
		s.logger.Warn("SetRule: invalid rule for date=%s: %v", date, err)
		return err
	}

	// 2. Правило должно быть атрибутировано администратору
	actorEmail = strings.TrimSpace(actorEmail)
	if actorEmail == "" {
		s.logger.Warn("SetRule: admin email is missing, rule for date=%s not saved", date)
		return domain.ErrUnauthenticated
	}

	for _, t := range rule.AllowedTimes {
		if !domain.IsBaseTimeSlot(t) {
			s.logger.Warn("SetRule: time=%s for date=%s is outside base slots and will not affect availability", t, date)
		}
	}

	rule.UpdatedBy = &actorEmail
	rule.UpdatedAt = s.now().UTC()

	// 3. Сохраняем
	if err := s.ruleRepo.Upsert(ctx, rule); err != nil {
		s.logger.Error("SetRule: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: SetRule: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info("SetRule: rule for date=%s updated by %s", date, actorEmail)
	return nil
}

// DeleteRule удаляет правило. existed=false не является ошибкой
func (s *Service) DeleteRule(ctx context.Context, date types.DateString) (bool, error) {
	if err := date.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	existed, err := s.ruleRepo.Delete(ctx, date)
	if err != nil {
		s.logger.Error("DeleteRule: repository error for date=%s: %v", date, err)
		return false, fmt.Errorf("%w: DeleteRule: %v", domain.ErrStoreUnavailable, err)
	}

	if !existed {
		s.logger.Warn("DeleteRule: no rule found to delete for date=%s", date)
		return false, nil
	}

	s.logger.Info("DeleteRule: rule for date=%s deleted", date)
	return true, nil
}

// Reset очищает все хранилища и заново применяет seed.
// Доступно только при наличии Resetter (in-memory драйвер).
func (s *Service) Reset(ctx context.Context) error {
	if len(s.resetter) == 0 {
		return ErrResetNotSupported
	}

	s.logger.Warn("Reset: resetting all booked slots and rules")
	for _, r := range s.resetter {
		if err := r.Reset(ctx); err != nil {
			return fmt.Errorf("%w: Reset: %v", domain.ErrStoreUnavailable, err)
		}
	}

	if len(s.seed) == 0 {
		return nil
	}
	_, err := s.applySeed(ctx, s.seed, true)
	return err
}
