package get_monthly_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/domain"
	getMonthlySummary "github.com/m04kA/astroya-scheduling/internal/usecase/get_monthly_summary"
)

const (
	msgInvalidYear  = "Ano inválido"
	msgInvalidMonth = "Mês inválido, esperado um valor de 1 a 12"
)

type Handler struct {
	useCase GetMonthlySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthlySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/summary
// Query params: year (required), month (required, 1..12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability/summary - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability/summary - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthlySummary.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /availability/summary - Failed to build summary: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
