package presets

import "errors"

var (
	ErrBuildQuery = errors.New("presets.repository: failed to build query")
	ErrExecQuery  = errors.New("presets.repository: failed to execute query")
	ErrScanRow    = errors.New("presets.repository: failed to scan row")
)
