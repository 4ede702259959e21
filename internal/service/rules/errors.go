package rules

import "errors"

var (
	// ErrResetNotSupported возвращается, когда хранилище не поддерживает сброс
	ErrResetNotSupported = errors.New("rules: reset is not supported by the storage driver")

	// ErrInvalidSeed возвращается, когда seed-файл не читается целиком
	ErrInvalidSeed = errors.New("rules: invalid seed file")
)
