package domain

import "github.com/m04kA/astroya-scheduling/pkg/types"

// DefaultConsultationMinutes длительность консультации в приглашении
const DefaultConsultationMinutes = 60

// Booking зафиксированное бронирование одного слота на дату
type Booking struct {
	Date types.DateString
	Time types.TimeString
}
