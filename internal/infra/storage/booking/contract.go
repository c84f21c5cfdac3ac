package booking

import (
	"github.com/arnakr/AeroPark-Service/pkg/dbtx"
)

// Executor interfaces come from dbtx so the repository works the same
// inside and outside a transaction
type DBExecutor = dbtx.DBExecutor
type TxExecutor = dbtx.TxExecutor
