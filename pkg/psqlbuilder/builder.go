package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

// Драйверы SQL-хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// postgres - билдер с плейсхолдерами $1, $2...
var postgres = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// For возвращает билдер с форматом плейсхолдеров под драйвер
func For(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return postgres
}
