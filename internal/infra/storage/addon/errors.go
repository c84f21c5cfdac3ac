package addon

import "errors"

var (
	// ErrAddonNotFound is returned when the addon does not exist
	ErrAddonNotFound = errors.New("addon.repository: addon not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("addon.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("addon.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("addon.repository: failed to scan row")
)
