package reset_data

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	bookingRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
)

func TestHandle(t *testing.T) {
	ctx := t.Context()
	rulesRepo := ruleRepo.NewMemoryRepository()
	bookings := bookingRepo.NewMemoryRepository()
	svc := rules.NewService(rulesRepo, logger.NewNop(), rules.WithResetters(rulesRepo, bookings))

	require.NoError(t, svc.SetRule(ctx, "2025-06-10", domain.RuleFullyUnavailable, nil, "admin@astroya.com.br"))
	_, err := bookings.Reserve(ctx, "2025-06-11", "09:00")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/admin/dev/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	booked, err := bookings.GetByDate(ctx, "2025-06-11")
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestHandle_NotSupported(t *testing.T) {
	svc := rules.NewService(ruleRepo.NewMemoryRepository(), logger.NewNop())

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/admin/dev/reset", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
