package submit_consultation

import (
	"context"
	"time"

	"github.com/m04kA/astroya-scheduling/internal/integrations/gcalendar"
	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// SlotBooker координатор бронирования
type SlotBooker interface {
	AttemptBook(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error)
}

// MailSender отправка писем
type MailSender interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// CalendarClient создание события в календаре оператора
type CalendarClient interface {
	CreateEvent(ctx context.Context, ev *gcalendar.Event) (string, error)
}

// LeadForwarder пересылка заявки в таблицу лидов (ошибки не пробрасываются)
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
