package submit_consultation

import "errors"

var (
	// ErrTimeNotOffered возвращается, когда выбранное время не входит в базовые слоты
	ErrTimeNotOffered = errors.New("submit_consultation: time is not an offered slot")
	// ErrDateInPast возвращается, когда выбранная дата раньше сегодняшней в часовом поясе слотов
	ErrDateInPast = errors.New("submit_consultation: date is in the past")
)
