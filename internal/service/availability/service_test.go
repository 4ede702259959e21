package availability

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	bookingRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const admin = "admin@astroya.com.br"

type fixture struct {
	rules    *rules.Service
	bookings *bookingRepo.MemoryRepository
	service  *Service
}

func newFixture() *fixture {
	log := logger.NewNop()
	rulesSvc := rules.NewService(ruleRepo.NewMemoryRepository(), log)
	bookings := bookingRepo.NewMemoryRepository()
	return &fixture{
		rules:    rulesSvc,
		bookings: bookings,
		service:  NewService(rulesSvc, bookings, log),
	}
}

type failingBookings struct{}

func (failingBookings) GetByDate(context.Context, types.DateString) ([]types.TimeString, error) {
	return nil, errors.New("backend down")
}

func TestResolve_NoRuleNoBookings(t *testing.T) {
	f := newFixture()

	slots, err := f.service.Resolve(context.Background(), "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Equal(t, domain.BaseTimeSlots(), f.service.AvailableSlots(context.Background(), "2025-06-10"))
}

func TestResolve_FullyUnavailableTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.bookings.Reserve(ctx, "2025-06-10", "09:00")
	require.NoError(t, err)
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-10", domain.RuleFullyUnavailable, nil, admin))

	slots, err := f.service.Resolve(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, domain.BaseTimeSlots(), slots)
}

func TestResolve_SpecificTimesSubtraction(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.rules.SetRule(ctx, "2025-06-10", domain.RuleSpecificTimes, []types.TimeString{"09:00", "10:00"}, admin))

	slots, err := f.service.Resolve(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:00", "14:00", "15:00", "16:00", "17:00"}, slots)

	_, err = f.bookings.Reserve(ctx, "2025-06-10", "10:00")
	require.NoError(t, err)

	slots, err = f.service.Resolve(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}, slots)
	assert.NotContains(t, slots, types.TimeString("09:00"))
}

func TestResolve_NonBaseTimesAddNoCapacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.rules.SetRule(ctx, "2025-06-10", domain.RuleSpecificTimes, []types.TimeString{"20:00"}, admin))

	slots, err := f.service.Resolve(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, domain.BaseTimeSlots(), slots)
}

func TestResolve_DeletionRevertsToUnrestricted(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.bookings.Reserve(ctx, "2025-06-10", "15:00")
	require.NoError(t, err)
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-10", domain.RuleFullyUnavailable, nil, admin))
	_, err = f.rules.DeleteRule(ctx, "2025-06-10")
	require.NoError(t, err)

	slots, err := f.service.Resolve(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"15:00"}, slots)
}

func TestResolve_InvalidDate(t *testing.T) {
	f := newFixture()

	_, err := f.service.Resolve(context.Background(), "2025-13-01")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUnavailableSlots_FailsSafe(t *testing.T) {
	log := logger.NewNop()
	svc := NewService(rules.NewService(ruleRepo.NewMemoryRepository(), log), failingBookings{}, log)

	_, err := svc.Resolve(context.Background(), "2025-06-10")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.Equal(t, domain.BaseTimeSlots(), svc.UnavailableSlots(context.Background(), "2025-06-10"))
	assert.Empty(t, svc.AvailableSlots(context.Background(), "2025-06-10"))
}

func TestFullyUnavailableDates_WholeMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
	}{
		{name: "leap february", year: 2024, month: 2, days: 29},
		{name: "non-leap february", year: 2025, month: 2, days: 28},
		{name: "april", year: 2025, month: 4, days: 30},
		{name: "december", year: 2025, month: 12, days: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()

			for day := 1; day <= tt.days; day++ {
				date := types.DateString(fmtDate(tt.year, tt.month, day))
				require.NoError(t, f.rules.SetRule(ctx, date, domain.RuleFullyUnavailable, nil, admin))
			}

			dates, err := f.service.FullyUnavailableDates(ctx, tt.year, tt.month)
			require.NoError(t, err)
			require.Len(t, dates, tt.days)
			assert.Equal(t, types.DateString(fmtDate(tt.year, tt.month, 1)), dates[0])
			assert.Equal(t, types.DateString(fmtDate(tt.year, tt.month, tt.days)), dates[tt.days-1])
			assert.True(t, slices.IsSorted(dates))
		})
	}
}

func TestFullyUnavailableDates_MixedCauses(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// день закрыт правилом
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-03", domain.RuleFullyUnavailable, nil, admin))

	// день закрыт правилом и бронированиями вместе
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-05", domain.RuleSpecificTimes, []types.TimeString{"09:00"}, admin))
	_, err := f.bookings.Reserve(ctx, "2025-06-05", "09:00")
	require.NoError(t, err)

	// день занят бронированиями полностью
	for _, slot := range domain.BaseTimeSlots() {
		_, err := f.bookings.Reserve(ctx, "2025-06-20", slot)
		require.NoError(t, err)
	}

	// остался один свободный слот
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-21", domain.RuleSpecificTimes, []types.TimeString{"17:00"}, admin))

	dates, err := f.service.FullyUnavailableDates(ctx, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-06-03", "2025-06-05", "2025-06-20"}, dates)

	seq := slices.Collect(f.service.FullyUnavailableDatesSeq(ctx, 2025, 6))
	assert.Equal(t, dates, seq)

	// последовательность перезапускаема и видит новые данные
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-30", domain.RuleFullyUnavailable, nil, admin))
	assert.Len(t, slices.Collect(f.service.FullyUnavailableDatesSeq(ctx, 2025, 6)), 4)
}

func TestFullyUnavailableDates_InvalidMonth(t *testing.T) {
	f := newFixture()

	for _, tc := range []struct{ year, month int }{{2025, 0}, {2025, 13}, {0, 5}, {10000, 1}} {
		_, err := f.service.FullyUnavailableDates(context.Background(), tc.year, tc.month)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, slices.Collect(f.service.FullyUnavailableDatesSeq(context.Background(), tc.year, tc.month)))
	}
}

// cancellingBookings отменяет контекст на заданном по счету чтении
type cancellingBookings struct {
	cancel context.CancelFunc
	after  int
	calls  int
}

func (c *cancellingBookings) GetByDate(context.Context, types.DateString) ([]types.TimeString, error) {
	c.calls++
	if c.calls == c.after {
		c.cancel()
	}
	return nil, nil
}

func TestFullyUnavailableDates_Cancelled(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		f := newFixture()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dates, err := f.service.FullyUnavailableDates(ctx, 2025, 6)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, dates)
	})

	t.Run("mid month", func(t *testing.T) {
		log := logger.NewNop()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		bookings := &cancellingBookings{cancel: cancel, after: 10}
		svc := NewService(rules.NewService(ruleRepo.NewMemoryRepository(), log), bookings, log)

		dates, err := svc.FullyUnavailableDates(ctx, 2025, 6)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, dates)
		assert.Less(t, bookings.calls, 30)
	})
}

func fmtDate(year, month, day int) string {
	return types.NewDateString(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)).String()
}
