package book_slot

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// UseCase повторно проверяет доступность слота и фиксирует бронирование
type UseCase struct {
	resolver    AvailabilityResolver
	bookingRepo BookingRepository
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	resolver AvailabilityResolver,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:    resolver,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// AttemptBook пытается занять слот. true - слот забронирован, false - слот недоступен.
// Не более одного true на пару (дата, время): атомарность обеспечивает Reserve хранилища.
func (uc *UseCase) AttemptBook(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error) {
	uc.logger.Info("AttemptBook: date=%s, time=%s", date, slot)

	// 1. Валидация входных данных
	if err := validateRequest(date, slot); err != nil {
		uc.logger.Warn("AttemptBook: validation failed: %v", err)
		return false, err
	}

	// 2. Свежий расчет недоступных слотов, без кэша
	unavailable, err := uc.resolver.Resolve(ctx, date)
	if err != nil {
		uc.observe(ResultError)
		uc.logger.Error("AttemptBook: failed to resolve availability for date=%s: %v", date, err)
		return false, storeError(err)
	}

	// 3. Слот закрыт правилом или уже занят
	if slices.Contains(unavailable, slot) {
		uc.observe(ResultRejected)
		uc.logger.Warn("AttemptBook: slot %s on %s is unavailable", slot, date)
		return false, nil
	}

	// 4. Атомарно добавляем слот в занятые
	added, err := uc.bookingRepo.Reserve(ctx, date, slot)
	if err != nil {
		uc.observe(ResultError)
		uc.logger.Error("AttemptBook: failed to reserve slot %s on %s: %v", slot, date, err)
		return false, storeError(err)
	}

	if !added {
		uc.observe(ResultRejected)
		uc.logger.Warn("AttemptBook: slot %s on %s was booked concurrently", slot, date)
		return false, nil
	}

	uc.observe(ResultBooked)
	uc.logger.Info("AttemptBook: booked %s for %s", slot, date)
	return true, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingAttempt(result)
	}
}

func storeError(err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
