package leadsheet

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL вебхука не задан
	ErrNotConfigured = errors.New("leadsheet client: webhook url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("leadsheet client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от вебхука
	ErrInvalidResponse = errors.New("leadsheet client: invalid response")
)
