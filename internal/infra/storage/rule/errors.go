package rule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правила на дату нет
	ErrRuleNotFound = errors.New("rule.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")

	// ErrDecodeRule возвращается, когда сохраненное значение правила не читается
	ErrDecodeRule = errors.New("rule.repository: failed to decode rule")
)
