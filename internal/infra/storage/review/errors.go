package review

import "errors"

var (
	// ErrDuplicateReview возвращается при попытке оставить второй отзыв на тот же резерв
	ErrDuplicateReview = errors.New("review.repository: review for this reserve already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
