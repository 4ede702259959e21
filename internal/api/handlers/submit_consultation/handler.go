package submit_consultation

import (
	"errors"
	"net/http"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
	"github.com/m04kA/astroya-scheduling/internal/domain"
	submitConsultation "github.com/m04kA/astroya-scheduling/internal/usecase/submit_consultation"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidForm        = "Dados do formulário inválidos. Verifique os campos e tente novamente."
	msgTimeNotOffered     = "Horário inválido. Escolha um dos horários disponíveis."
	msgDateInPast         = "Não é possível agendar em uma data passada."
	msgSlotUnavailable    = "Este horário foi reservado ou tornou-se indisponível enquanto você preenchia o formulário. Por favor, escolha outro."
	msgNotificationFailed = "Houve um problema ao enviar sua solicitação. Por favor, tente novamente ou entre em contato diretamente."
	msgStoreUnavailable   = "Não foi possível verificar a disponibilidade agora. Tente novamente em alguns instantes."
	msgSuccess            = "Sua solicitação foi enviada! Enviamos um e-mail de confirmação com um convite de calendário para você."
)

type Handler struct {
	useCase SubmitConsultationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitConsultationRequest
	if err := handlers.DecodeJSONLimited(w, r, handlers.MaxBodyBytes, &req); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.logger.Warn("POST /consultations - Body too large: %v", err)
			handlers.RespondTooLarge(w)
			return
		}
		h.logger.Warn("POST /consultations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitConsultation.ErrTimeNotOffered):
			h.logger.Warn("POST /consultations - Time not offered: time=%s", req.PreferredTime)
			handlers.RespondBadRequest(w, msgTimeNotOffered)

		case errors.Is(err, submitConsultation.ErrDateInPast):
			h.logger.Warn("POST /consultations - Date in the past: date=%s", req.PreferredDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /consultations - Validation failed: email=%s, error=%v", req.ClientEmail, err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		case errors.Is(err, domain.ErrSlotUnavailable):
			h.logger.Warn("POST /consultations - Slot unavailable: date=%s, time=%s", req.PreferredDate, req.PreferredTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, domain.ErrNotification):
			h.logger.Error("POST /consultations - Notification failed, booking kept: date=%s, time=%s, error=%v",
				req.PreferredDate, req.PreferredTime, err)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("POST /consultations - Store unavailable: error=%v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /consultations - Failed to submit consultation: email=%s, error=%v", req.ClientEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultations - Consultation booked: date=%s, time=%s, invite_uid=%s",
		result.Date, result.Time, result.InviteUID)
	handlers.RespondSuccess(w, http.StatusCreated, msgSuccess)
}
