package integration

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE pull_requests RESTART IDENTITY CASCADE;
	`)
	return err
}

func CountPullRequests(ctx context.Context, pool *pgxpool.Pool, repository string) (int, error) {
	row := pool.QueryRow(ctx, `SELECT count(*) FROM pull_requests WHERE repository = $1`, repository)
	var n int
	err := row.Scan(&n)
	return n, err
}
