package submit_consultation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/internal/integrations/gcalendar"
	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// UseCase обрабатывает заявку на консультацию: бронирование, письма, календарь
type UseCase struct {
	booker       SlotBooker
	mail         MailSender
	calendar     CalendarClient
	leads        LeadForwarder
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. calendar, leads и metrics могут быть nil
func NewUseCase(
	booker SlotBooker,
	mail MailSender,
	calendar CalendarClient,
	leads LeadForwarder,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Duration <= 0 {
		settings.Duration = domain.DefaultConsultationMinutes * time.Minute
	}
	return &UseCase{
		booker:       booker,
		mail:         mail,
		calendar:     calendar,
		leads:        leads,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case.
// Письма отправляются только после успешного бронирования; ошибка отправки
// не отменяет бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitConsultation: client=%s, company=%s, date=%s, time=%s",
		req.ClientEmail, req.CompanyName, req.PreferredDate, req.PreferredTime)

	// 1. Валидация формы
	today := types.NewDateString(uc.timeProvider.Now().In(uc.settings.Location))
	consultation, err := validateRequest(req, today)
	if err != nil {
		uc.logger.Warn("SubmitConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторная проверка и бронирование слота
	booked, err := uc.booker.AttemptBook(ctx, consultation.PreferredDate, consultation.PreferredTime)
	if err != nil {
		uc.logger.Error("SubmitConsultation: booking failed for %s %s: %v",
			consultation.PreferredDate, consultation.PreferredTime, err)
		return nil, err
	}
	if !booked {
		uc.logger.Warn("SubmitConsultation: slot %s %s is not available",
			consultation.PreferredDate, consultation.PreferredTime)
		return nil, domain.ErrSlotUnavailable
	}

	// 3. Время начала и окончания в часовом поясе оператора
	start, err := uc.startTime(consultation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	end := start.Add(uc.settings.Duration)

	data := newEmailData(consultation, mailer.FormatDatePtBR(start))

	// 4. Приглашение, одно на оба письма
	invite := &mailer.Invite{
		UID:         uuid.NewString() + "@" + uc.settings.UIDDomain,
		Stamp:       uc.timeProvider.Now(),
		Start:       start,
		End:         end,
		Summary:     fmt.Sprintf("Consultoria Astroya: %s (%s)", consultation.CompanyName, consultation.ClientName),
		Description: inviteDescription(consultation, data),
		Location:    uc.settings.Place,
		Organizer:   uc.settings.From,
		Attendee:    mailer.Address{Name: consultation.ClientName, Email: consultation.ClientEmail},
	}
	attachment := invite.Attachment(inviteFilename)

	// 5. Письмо оператору, затем клиенту
	operatorHTML, err := render(operatorTemplate, data)
	if err != nil {
		return nil, uc.notificationFailed(consultation, err)
	}
	clientHTML, err := render(clientTemplate, data)
	if err != nil {
		return nil, uc.notificationFailed(consultation, err)
	}

	operatorMsg := &mailer.Message{
		From:        mailer.Address{Name: "Astroya Agendamentos", Email: uc.settings.From.Email},
		To:          uc.settings.Operator,
		Subject:     fmt.Sprintf("Nova Solicitação de Consultoria Astroya: %s (Solicitante: %s)", consultation.CompanyName, consultation.ClientName),
		HTML:        operatorHTML,
		Attachments: []mailer.Attachment{attachment},
	}
	if err := uc.mail.Send(ctx, operatorMsg); err != nil {
		return nil, uc.notificationFailed(consultation, err)
	}
	uc.observe("email", "sent")

	clientMsg := &mailer.Message{
		From:        uc.settings.From,
		To:          invite.Attendee,
		Subject:     "Confirmação de Solicitação de Consultoria - Astroya",
		HTML:        clientHTML,
		Attachments: []mailer.Attachment{attachment},
	}
	if err := uc.mail.Send(ctx, clientMsg); err != nil {
		return nil, uc.notificationFailed(consultation, err)
	}
	uc.observe("email", "sent")

	resp := &Response{
		Date:      consultation.PreferredDate,
		Time:      consultation.PreferredTime,
		InviteUID: invite.UID,
	}

	// 6. Календарь оператора, без влияния на результат
	if uc.calendar != nil {
		eventID, err := uc.calendar.CreateEvent(ctx, &gcalendar.Event{
			Summary:     invite.Summary,
			Description: invite.Description,
			Location:    invite.Location,
			Start:       start,
			End:         end,
		})
		if err != nil {
			uc.observe("calendar", "error")
			uc.logger.Warn("SubmitConsultation: calendar event not created for %s %s: %v",
				consultation.PreferredDate, consultation.PreferredTime, err)
		} else {
			uc.observe("calendar", "sent")
			resp.CalendarEventID = eventID
		}
	}

	// 7. Таблица лидов
	if uc.leads != nil {
		uc.leads.ForwardWithGracefulDegradation(ctx, &leadsheet.Lead{
			Kind:    leadsheet.KindConsultation,
			Name:    consultation.ClientName,
			Email:   consultation.ClientEmail,
			Company: consultation.CompanyName,
			Date:    consultation.PreferredDate.String(),
			Time:    consultation.PreferredTime.String(),
			Fields: map[string]string{
				"companyWebsite": consultation.CompanyWebsite,
				"mainChallenge":  consultation.MainChallenge,
				"targetAudience": consultation.TargetAudience,
				"services":       data.Services,
			},
		})
	}

	uc.logger.Info("SubmitConsultation: request for %s %s processed, invite uid=%s",
		consultation.PreferredDate, consultation.PreferredTime, invite.UID)
	return resp, nil
}

func (uc *UseCase) startTime(req *domain.ConsultationRequest) (time.Time, error) {
	day, err := req.PreferredDate.Time(uc.settings.Location)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := req.PreferredTime.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, uc.settings.Location), nil
}

func (uc *UseCase) notificationFailed(req *domain.ConsultationRequest, err error) error {
	uc.observe("email", "error")
	uc.logger.Error("SubmitConsultation: notification failed, slot %s %s stays booked: %v",
		req.PreferredDate, req.PreferredTime, err)
	return fmt.Errorf("%w: %v", domain.ErrNotification, err)
}

func (uc *UseCase) observe(channel, status string) {
	if uc.metrics != nil {
		uc.metrics.IncNotification(channel, status)
	}
}
