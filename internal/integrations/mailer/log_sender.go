package mailer

import (
	"context"
	"sync"
)

// LogSender не отправляет письма, а пишет их в лог. Используется в разработке.
// Отправленные письма доступны через Sent.
type LogSender struct {
	log  Logger
	mu   sync.Mutex
	sent []Message
}

// NewLogSender создает отправителя для разработки
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send пишет письмо в лог
func (s *LogSender) Send(_ context.Context, msg *Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	s.mu.Lock()
	s.sent = append(s.sent, *msg)
	s.mu.Unlock()

	s.log.Info("Mail (log driver): from=%s to=%s subject=%q attachments=%d", msg.From.Email, msg.To.Email, msg.Subject, len(msg.Attachments))
	return nil
}

// Sent копия отправленных писем
func (s *LogSender) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.sent))
	copy(out, s.sent)
	return out
}
