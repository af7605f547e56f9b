package reserve

import "errors"

var (
	// ErrReserveNotFound возвращается, когда резерв не найден
	ErrReserveNotFound = errors.New("reserve.repository: reserve not found")

	// ErrDatesUnavailable возвращается, когда вставка нарушила exclusion constraint
	// по (room_id, daterange) - даты уже заняты другой бронью
	ErrDatesUnavailable = errors.New("reserve.repository: dates are not available")

	// ErrClientDatesConflict возвращается, когда вставка нарушила exclusion constraint
	// по (client_id, daterange) - у клиента уже есть бронь на эти даты
	ErrClientDatesConflict = errors.New("reserve.repository: client already holds a reserve for these dates")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reserve.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reserve.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reserve.repository: failed to scan row")
)
