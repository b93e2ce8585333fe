package businessconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда в business_hours нет ни одной строки
	ErrConfigNotFound = errors.New("businessconfig.repository: business hours not configured")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("businessconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("businessconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("businessconfig.repository: failed to scan row")
)
