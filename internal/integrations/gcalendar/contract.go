package gcalendar

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
