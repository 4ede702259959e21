package submit_briefing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/domain"
	submitBriefing "github.com/m04kA/astroya-scheduling/internal/usecase/submit_briefing"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidEmail       = "E-mail inválido"
	msgInvalidURL         = "Link do site inválido"
	msgInvalidForm        = "Dados do formulário inválidos."
	msgNotificationFailed = "Erro ao processar a requisição"
	msgSuccess            = "Formulário enviado com sucesso!"
)

type Handler struct {
	useCase SubmitBriefingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBriefingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/briefings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBriefingRequest
	if err := handlers.DecodeJSONLimited(w, r, handlers.MaxBodyBytes, &req); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.logger.Warn("POST /briefings - Body too large: %v", err)
			handlers.RespondTooLarge(w)
			return
		}
		h.logger.Warn("POST /briefings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest()); err != nil {
		var fieldErr *submitBriefing.FieldError
		switch {
		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /briefings - Validation failed: field=%s, tag=%s", fieldErr.Field, fieldErr.Tag)
			handlers.RespondBadRequest(w, fieldMessage(fieldErr))

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /briefings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		case errors.Is(err, domain.ErrNotification):
			h.logger.Error("POST /briefings - Notification failed: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		default:
			h.logger.Error("POST /briefings - Failed to submit briefing: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /briefings - Briefing sent: company=%s", req.Empresa)
	handlers.RespondSuccess(w, http.StatusOK, msgSuccess)
}

func fieldMessage(err *submitBriefing.FieldError) string {
	switch err.Tag {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", err.Field)
	case "email":
		return msgInvalidEmail
	case "url":
		return msgInvalidURL
	default:
		return msgInvalidForm
	}
}
