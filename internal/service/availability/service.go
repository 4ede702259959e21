package availability

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// Service вычисляет недоступные слоты на дату из правила и бронирований
type Service struct {
	rules    RuleReader
	bookings BookingReader
	logger   Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(rules RuleReader, bookings BookingReader, logger Logger) *Service {
	return &Service{
		rules:    rules,
		bookings: bookings,
		logger:   logger,
	}
}

// Resolve возвращает отсортированное объединение слотов, закрытых правилом, и занятых слотов.
// Ошибки хранилищ возвращаются как domain.ErrStoreUnavailable.
func (s *Service) Resolve(ctx context.Context, date types.DateString) ([]types.TimeString, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	rule, err := s.rules.GetRule(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - rule date=%s: %v", domain.ErrStoreUnavailable, date, err)
	}

	booked, err := s.bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - bookings date=%s: %v", domain.ErrStoreUnavailable, date, err)
	}

	unavailable := rule.UnavailableSlots()
	unavailable = append(unavailable, booked...)
	return domain.NormalizeSlots(unavailable), nil
}

// UnavailableSlots то же, что Resolve, но при недоступности хранилища
// считает закрытыми все базовые слоты
func (s *Service) UnavailableSlots(ctx context.Context, date types.DateString) []types.TimeString {
	slots, err := s.Resolve(ctx, date)
	if err != nil {
		s.logger.Error("UnavailableSlots: date=%s, treating day as fully unavailable: %v", date, err)
		return domain.BaseTimeSlots()
	}
	return slots
}

// AvailableSlots базовые слоты, не попавшие в UnavailableSlots
func (s *Service) AvailableSlots(ctx context.Context, date types.DateString) []types.TimeString {
	unavailable := s.UnavailableSlots(ctx, date)

	available := make([]types.TimeString, 0, len(unavailable))
	for _, slot := range domain.BaseTimeSlots() {
		if !slices.Contains(unavailable, slot) {
			available = append(available, slot)
		}
	}
	return available
}

// FullyUnavailableDates даты месяца, в которых закрыты все базовые слоты, по возрастанию
func (s *Service) FullyUnavailableDates(ctx context.Context, year, month int) ([]types.DateString, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	dates := slices.Collect(s.fullyUnavailable(ctx, year, time.Month(month)))
	// при отмене обход месяца обрывается, неполный результат не возвращаем
	if err := ctx.Err(); err != nil {
		s.logger.Warn("FullyUnavailableDates: %04d-%02d interrupted: %v", year, month, err)
		return nil, err
	}
	s.logger.Info("FullyUnavailableDates: found %d fully unavailable days in %04d-%02d", len(dates), year, month)
	return dates, nil
}

// FullyUnavailableDatesSeq ленивый вариант FullyUnavailableDates.
// Каждый проход вычисляется заново; при некорректном месяце последовательность пуста.
func (s *Service) FullyUnavailableDatesSeq(ctx context.Context, year, month int) iter.Seq[types.DateString] {
	if err := validateMonth(year, month); err != nil {
		return func(func(types.DateString) bool) {}
	}
	return s.fullyUnavailable(ctx, year, time.Month(month))
}

func (s *Service) fullyUnavailable(ctx context.Context, year int, month time.Month) iter.Seq[types.DateString] {
	return func(yield func(types.DateString) bool) {
		days := types.DaysInMonth(year, month)
		for day := 1; day <= days; day++ {
			if ctx.Err() != nil {
				return
			}

			date := types.NewDateString(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
			if !domain.CoversAllBaseSlots(s.UnavailableSlots(ctx, date)) {
				continue
			}
			if !yield(date) {
				return
			}
		}
	}
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be in 1..12, got %d", domain.ErrValidation, month)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year must be in 1..9999, got %d", domain.ErrValidation, year)
	}
	return nil
}
