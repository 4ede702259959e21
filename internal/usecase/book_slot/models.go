package book_slot

// Значения метки result для booking_attempts_total
const (
	ResultBooked   = "booked"
	ResultRejected = "rejected"
	ResultError    = "error"
)
