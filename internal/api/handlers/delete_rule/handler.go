package delete_rule

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const (
	msgInvalidDate = "Formato de data inválido. Use YYYY-MM-DD."
	msgInternal    = "Erro interno ao deletar regra."
	msgDeletedFmt  = "Regra para %s removida."
	msgNotFoundFmt = "Nenhuma regra encontrada para %s."
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/availability-rules/{date}
// Удаление отсутствующего правила не ошибка: 200 и success=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := types.DateString(mux.Vars(r)["date"])

	existed, err := h.service.DeleteRule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("DELETE /admin/availability-rules/{date} - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /admin/availability-rules/{date} - Failed to delete rule: date=%s, error=%v", date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	if !existed {
		handlers.RespondError(w, http.StatusOK, fmt.Sprintf(msgNotFoundFmt, date))
		return
	}

	h.logger.Info("DELETE /admin/availability-rules/{date} - Rule deleted: date=%s", date)
	handlers.RespondSuccess(w, http.StatusOK, fmt.Sprintf(msgDeletedFmt, date))
}
