package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database operations shared by *sql.DB and *sql.Tx,
// so repositories can run both standalone and inside a transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)
