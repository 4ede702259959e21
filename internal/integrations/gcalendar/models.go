package gcalendar

import "time"

// Event событие календаря
type Event struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}
