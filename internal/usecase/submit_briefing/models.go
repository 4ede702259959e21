package submit_briefing

import (
	"time"

	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
)

// Request бриф с формы
type Request struct {
	Name           string
	Email          string
	Company        string
	Phone          string
	Segment        string
	HasWebsite     bool
	WebsiteURL     string
	Goal           string
	OtherGoal      string
	Services       string
	VisualIdentity string
	TargetAudience string
	Reference      string
	Stage          string
	Difficulties   string
}

// Settings адреса писем
type Settings struct {
	From     mailer.Address
	Operator mailer.Address
	Location *time.Location // для отметки времени отправки
}
