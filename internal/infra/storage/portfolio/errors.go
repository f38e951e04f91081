package portfolio

import "errors"

var (
	// ErrItemNotFound возвращается, когда работа не найдена
	ErrItemNotFound = errors.New("portfolio.repository: item not found")

	ErrBuildQuery = errors.New("portfolio.repository: failed to build query")
	ErrExecQuery  = errors.New("portfolio.repository: failed to execute query")
	ErrScanRow    = errors.New("portfolio.repository: failed to scan row")
)
