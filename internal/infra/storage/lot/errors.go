package lot

import "errors"

var (
	// ErrLotNotFound is returned when the lot does not exist
	ErrLotNotFound = errors.New("lot.repository: lot not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("lot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("lot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("lot.repository: failed to scan row")
)
