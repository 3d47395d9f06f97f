package core

import (
	"context"
	"database/sql"
)

// DBExecutor is the query-execution surface repositories depend on: one
// parameterized statement in, a scanned result (or failure) out. *sqlx.DB
// satisfies it; pooling, connection acquisition and release are entirely the
// handle's business and never the caller's.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
