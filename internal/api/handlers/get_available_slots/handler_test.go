package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/internal/service/availability"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
	getAvailableSlots "github.com/m04kA/astroya-scheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	log := logger.NewNop()

	bookings := bookingRepo.NewMemoryRepository()
	_, err := bookings.Reserve(t.Context(), "2030-06-10", "11:00")
	require.NoError(t, err)

	resolver := availability.NewService(rules.NewService(ruleRepo.NewMemoryRepository(), log), bookings, log)
	h := NewHandler(getAvailableSlots.NewUseCase(resolver, nil, log), log)

	router := mux.NewRouter()
	router.HandleFunc("/availability/{date}/unavailable-slots", h.Handle).Methods(http.MethodGet)
	return router
}

func TestHandle(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/availability/2030-06-10/unavailable-slots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2030-06-10", body.Date)
	assert.Equal(t, []string{"11:00"}, body.UnavailableSlots)
	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00", "16:00", "17:00"}, body.AvailableSlots)
	assert.False(t, body.IsPast)
}

func TestHandle_EmptyListsAreArrays(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/availability/2030-06-11/unavailable-slots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unavailableSlots":[]`)
}

func TestHandle_InvalidDate(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/availability/2030-02-30/unavailable-slots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
