package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, когда у письма нет получателя или отправителя
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrDelivery возвращается, когда провайдер не принял письмо
	ErrDelivery = errors.New("mailer: delivery failed")

	// ErrRender возвращается при ошибке рендеринга шаблона
	ErrRender = errors.New("mailer: failed to render template")
)
