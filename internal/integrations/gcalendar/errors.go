package gcalendar

import "errors"

var (
	// ErrInternal возвращается при ошибке инициализации клиента
	ErrInternal = errors.New("gcalendar client: internal error")

	// ErrInsertEvent возвращается, когда API календаря не приняло событие
	ErrInsertEvent = errors.New("gcalendar client: failed to insert event")
)
