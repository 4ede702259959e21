package middleware

import "time"

// HTTPRecorder запись метрик HTTP запросов
type HTTPRecorder interface {
	ObserveHTTPRequest(method, route, status string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
