package reset_data

import (
	"errors"
	"net/http"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
)

const (
	msgNotSupported = "Reset disponível apenas com armazenamento em memória."
	msgReset        = "Dados de agendamento e regras foram resetados."
)

type Handler struct {
	service Resetter
	logger  Logger
}

func NewHandler(service Resetter, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/dev/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		if errors.Is(err, rules.ErrResetNotSupported) {
			handlers.RespondError(w, http.StatusNotImplemented, msgNotSupported)
			return
		}
		h.logger.Error("POST /admin/dev/reset - Failed to reset data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("POST /admin/dev/reset - All bookings and rules were reset")
	handlers.RespondSuccess(w, http.StatusOK, msgReset)
}
