package submit_briefing

import (
	"context"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
)

// MailSender отправка писем
type MailSender interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// LeadForwarder пересылка брифа в таблицу лидов
type LeadForwarder interface {
	ForwardWithGracefulDegradation(ctx context.Context, lead *leadsheet.Lead)
}

// MetricsRecorder счетчик уведомлений
type MetricsRecorder interface {
	IncNotification(channel, status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
