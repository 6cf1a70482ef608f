package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockery --name Querier --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Querier.go
//go:generate mockery --name Row --srcpkg github.com/jackc/pgx/v5 --output ../../../../mocks --outpkg mocks --with-expecter --filename Row.go

// Querier is the subset of pgx shared by pools, connections and
// transactions, so repositories run the same against any of them.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
