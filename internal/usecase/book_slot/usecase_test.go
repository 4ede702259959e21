package book_slot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	bookingRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/internal/service/availability"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const admin = "admin@astroya.com.br"

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *countingMetrics) IncBookingAttempt(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[result]++
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Reserve(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error) {
	args := m.Called(ctx, date, slot)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	rules    *rules.Service
	bookings *bookingRepo.MemoryRepository
	resolver *availability.Service
	metrics  *countingMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	log := logger.NewNop()
	rulesSvc := rules.NewService(ruleRepo.NewMemoryRepository(), log)
	bookings := bookingRepo.NewMemoryRepository()
	resolver := availability.NewService(rulesSvc, bookings, log)
	metrics := &countingMetrics{}
	return &fixture{
		rules:    rulesSvc,
		bookings: bookings,
		resolver: resolver,
		metrics:  metrics,
		uc:       NewUseCase(resolver, bookings, metrics, log),
	}
}

func TestAttemptBook_IdempotentBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	ok, err := f.uc.AttemptBook(ctx, "2025-06-10", "09:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.uc.AttemptBook(ctx, "2025-06-10", "09:00")
	require.NoError(t, err)
	assert.False(t, ok)

	booked, err := f.bookings.GetByDate(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, booked)

	assert.Equal(t, 1, f.metrics.counts[ResultBooked])
	assert.Equal(t, 1, f.metrics.counts[ResultRejected])
}

func TestAttemptBook_NoDoubleAllocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	const attempts = 32

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
		fail atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := f.uc.AttemptBook(ctx, "2025-06-10", "14:00")
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			} else {
				fail.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(attempts-1), fail.Load())
}

func TestAttemptBook_RejectedByRule(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.rules.SetRule(ctx, "2025-06-10", domain.RuleSpecificTimes, []types.TimeString{"09:00"}, admin))

	ok, err := f.uc.AttemptBook(ctx, "2025-06-10", "10:00")
	require.NoError(t, err)
	assert.False(t, ok)

	booked, err := f.bookings.GetByDate(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestAttemptBook_ValidationErrors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.AttemptBook(context.Background(), "10-06-2025", "09:00")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.AttemptBook(context.Background(), "2025-06-10", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.AttemptBook(context.Background(), "2025-06-10", "9:00")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttemptBook_StoreUnavailable(t *testing.T) {
	f := newFixture()
	repo := &mockBookingRepository{}
	repo.On("Reserve", mock.Anything, types.DateString("2025-06-10"), types.TimeString("09:00")).
		Return(false, errors.New("connection reset"))

	uc := NewUseCase(f.resolver, repo, nil, logger.NewNop())

	ok, err := uc.AttemptBook(context.Background(), "2025-06-10", "09:00")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	repo.AssertExpectations(t)
}

// Сквозной сценарий: правило, бронирование, конфликт, удаление правила
func TestAttemptBook_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	date := types.DateString("2025-06-10")

	slots, err := f.resolver.Resolve(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, slots)

	require.NoError(t, f.rules.SetRule(ctx, date, domain.RuleSpecificTimes, []types.TimeString{"09:00", "14:00"}, admin))
	slots, err = f.resolver.Resolve(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "15:00", "16:00", "17:00"}, slots)

	ok, err := f.uc.AttemptBook(ctx, date, "09:00")
	require.NoError(t, err)
	assert.True(t, ok)

	slots, err = f.resolver.Resolve(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "15:00", "16:00", "17:00"}, slots)

	ok, err = f.uc.AttemptBook(ctx, date, "09:00")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.uc.AttemptBook(ctx, date, "10:00")
	require.NoError(t, err)
	assert.False(t, ok)

	existed, err := f.rules.DeleteRule(ctx, date)
	require.NoError(t, err)
	assert.True(t, existed)

	slots, err = f.resolver.Resolve(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}
