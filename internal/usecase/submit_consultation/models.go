package submit_consultation

import (
	"time"

	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// Request модель заявки на консультацию
type Request struct {
	ClientName         string
	CompanyName        string
	ClientEmail        string
	CompanyWebsite     string
	MainChallenge      string
	TargetAudience     string
	ServiceLandingPage bool
	ServiceSEO         bool
	ServiceMaintenance bool
	PreferredDate      string // YYYY-MM-DD
	PreferredTime      string // HH:MM, один из базовых слотов
}

// Response результат обработки заявки
type Response struct {
	Date            types.DateString
	Time            types.TimeString
	InviteUID       string
	CalendarEventID string // пусто, если календарь отключен или недоступен
}

// Settings параметры писем и приглашения
type Settings struct {
	From      mailer.Address // отправитель писем и организатор события
	Operator  mailer.Address // получатель уведомления о заявке
	Location  *time.Location // часовой пояс слотов
	Duration  time.Duration  // длительность консультации
	Place     string         // LOCATION приглашения
	UIDDomain string         // домен в UID приглашения
}
