package get_available_slots

import (
	"context"
	"slices"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	resolver     AvailabilityResolver
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver AvailabilityResolver, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		resolver:     resolver,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Занятые слоты (при сбое хранилища все слоты считаются занятыми)
	unavailable := uc.resolver.UnavailableSlots(ctx, date)

	// 3. Разбивка базовых слотов
	base := domain.BaseTimeSlots()
	resp := &Response{
		Date:             date,
		UnavailableSlots: append([]types.TimeString{}, unavailable...),
		AvailableSlots:   make([]types.TimeString, 0, len(base)),
		Slots:            make([]Slot, 0, len(base)),
		IsPast:           isDateInPast(date, uc.timeProvider.Now().In(uc.location)),
	}
	for _, t := range base {
		free := !slices.Contains(unavailable, t)
		resp.Slots = append(resp.Slots, Slot{
			StartTime:       t,
			DurationMinutes: domain.DefaultConsultationMinutes,
			Available:       free,
		})
		if free {
			resp.AvailableSlots = append(resp.AvailableSlots, t)
		}
	}

	uc.logger.Info("GetAvailableSlots: date=%s, unavailable=%d, available=%d",
		date, len(resp.UnavailableSlots), len(resp.AvailableSlots))

	return resp, nil
}
