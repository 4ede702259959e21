package submit_briefing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
)

const sentAtLayout = "02/01/2006 15:04:05"

// UseCase отправляет бриф оператору и подтверждение клиенту
type UseCase struct {
	mail         MailSender
	leads        LeadForwarder
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. leads и metrics могут быть nil
func NewUseCase(mail MailSender, leads LeadForwarder, metrics MetricsRecorder, settings Settings, logger Logger) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &UseCase{
		mail:         mail,
		leads:        leads,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("SubmitBriefing: email=%s, company=%s", req.Email, req.Company)

	// 1. Валидация
	briefing, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitBriefing: validation failed: %v", err)
		return err
	}

	// 2. Письма
	now := uc.timeProvider.Now().In(uc.settings.Location)
	data := emailData{
		BriefingRequest: briefing,
		GoalText:        briefing.GoalText(),
		SentAt:          now.Format(sentAtLayout),
		Year:            now.Year(),
	}

	operatorHTML, err := render(operatorTemplate, data)
	if err != nil {
		return uc.notificationFailed(briefing, err)
	}
	clientHTML, err := render(clientTemplate, data)
	if err != nil {
		return uc.notificationFailed(briefing, err)
	}

	from := mailer.Address{Name: "Astroya", Email: uc.settings.From.Email}
	if err := uc.mail.Send(ctx, &mailer.Message{
		From:    from,
		To:      uc.settings.Operator,
		Subject: "Nova Consultoria de Landing Page - " + briefing.Company,
		HTML:    operatorHTML,
	}); err != nil {
		return uc.notificationFailed(briefing, err)
	}
	uc.observe("sent")

	if err := uc.mail.Send(ctx, &mailer.Message{
		From:    from,
		To:      mailer.Address{Name: briefing.Name, Email: briefing.Email},
		Subject: "Recebemos sua solicitação de consultoria 🚀",
		HTML:    clientHTML,
	}); err != nil {
		return uc.notificationFailed(briefing, err)
	}
	uc.observe("sent")

	// 3. Таблица лидов
	if uc.leads != nil {
		uc.leads.ForwardWithGracefulDegradation(ctx, &leadsheet.Lead{
			Kind:    leadsheet.KindBriefing,
			Name:    briefing.Name,
			Email:   briefing.Email,
			Company: briefing.Company,
			Phone:   briefing.Phone,
			Fields: map[string]string{
				"segment":        briefing.Segment,
				"hasWebsite":     strconv.FormatBool(briefing.HasWebsite),
				"websiteUrl":     briefing.WebsiteURL,
				"goal":           data.GoalText,
				"services":       briefing.Services,
				"visualIdentity": briefing.VisualIdentity,
				"targetAudience": briefing.TargetAudience,
				"reference":      briefing.Reference,
				"stage":          briefing.Stage,
				"difficulties":   briefing.Difficulties,
			},
		})
	}

	uc.logger.Info("SubmitBriefing: briefing from %s processed", briefing.Email)
	return nil
}

func (uc *UseCase) notificationFailed(req *domain.BriefingRequest, err error) error {
	uc.observe("error")
	uc.logger.Error("SubmitBriefing: notification failed for %s: %v", req.Email, err)
	return fmt.Errorf("%w: %v", domain.ErrNotification, err)
}

func (uc *UseCase) observe(status string) {
	if uc.metrics != nil {
		uc.metrics.IncNotification("email", status)
	}
}
