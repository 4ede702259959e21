package domain

import "errors"

var (
	// ErrValidation некорректные входные данные (дата, время, обязательное поле, пустое правило)
	ErrValidation = errors.New("validation error")

	// ErrUnauthenticated изменение правил без идентифицированного администратора
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrSlotUnavailable слот уже занят или закрыт правилом
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrStoreUnavailable хранилище недоступно
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotification не удалось отправить уведомление после успешного бронирования
	ErrNotification = errors.New("notification delivery failed")
)
