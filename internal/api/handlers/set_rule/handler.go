package set_rule

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/api/middleware"
	"github.com/m04kA/astroya-scheduling/internal/domain"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgMissingRule        = "Data e regra são obrigatórias."
	msgInvalidRule        = "Regra inválida. Use YYYY-MM-DD e horários HH:MM; ao menos um horário é necessário para horários específicos."
	msgUnauthenticated    = "Usuário administrador não identificado. Regra não salva."
	msgInternal           = "Erro interno ao atualizar regra."
	msgUpdatedFmt         = "Regra para %s atualizada."
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

// Handle POST /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, kind, times, err := req.ToRule()
	if err != nil {
		h.logger.Warn("POST /admin/availability-rules - %v", err)
		handlers.RespondBadRequest(w, msgMissingRule)
		return
	}

	actor := middleware.AdminEmail(r.Context())

	if err := h.service.SetRule(r.Context(), date, kind, times, actor); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /admin/availability-rules - Invalid rule: date=%s, kind=%s, error=%v", date, kind, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, domain.ErrUnauthenticated):
			h.logger.Warn("POST /admin/availability-rules - No admin identity: date=%s", date)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("POST /admin/availability-rules - Failed to save rule: date=%s, error=%v", date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /admin/availability-rules - Rule saved: date=%s, kind=%s, actor=%s", date, kind, actor)
	handlers.RespondSuccess(w, http.StatusOK, fmt.Sprintf(msgUpdatedFmt, date))
}
