package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	// DefaultSendGridHost хост API SendGrid
	DefaultSendGridHost = "https://api.sendgrid.com"

	sendGridEndpoint = "/v3/mail/send"
)

// SendGridSender отправляет письма через SendGrid v3 API
type SendGridSender struct {
	apiKey string
	host   string
	log    Logger
}

// NewSendGridSender создает отправителя. Пустой host означает DefaultSendGridHost
func NewSendGridSender(apiKey, host string, log Logger) *SendGridSender {
	if host == "" {
		host = DefaultSendGridHost
	}
	return &SendGridSender{apiKey: apiKey, host: host, log: log}
}

// Send отправляет письмо
func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(msg.From.Name, msg.From.Email))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.To.Name, msg.To.Email))
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", msg.HTML))

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		m.AddAttachment(att)
	}

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrDelivery, msg.To.Email, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: to=%s: status=%d body=%s", ErrDelivery, msg.To.Email, resp.StatusCode, resp.Body)
	}

	s.log.Info("Mail sent: to=%s subject=%q status=%d", msg.To.Email, msg.Subject, resp.StatusCode)
	return nil
}

func validateMessage(msg *Message) error {
	if msg == nil || msg.To.Email == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if msg.From.Email == "" {
		return fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	}
	return nil
}
