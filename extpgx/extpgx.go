// Package extpgx paginates the results of SQL queries over a pgx
// connection pool.
//
// The caller supplies a base query without LIMIT/OFFSET plus a row-scan
// function; the adapter derives the count query and the page query from it:
//
//	coll := extpgx.NewCollection(pool,
//		"SELECT id, name, phone FROM entries ORDER BY name",
//		nil, pgx.RowToStructByName[Entry])
//	page, err := paginate.New(ctx, coll, pageNum, 20)
//
// The base query must have a deterministic ORDER BY, otherwise pages can
// overlap between requests.
package extpgx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection adapts a SQL query to the paginate.Collection interface.
type Collection[T any] struct {
	pool  *pgxpool.Pool
	query string
	args  []any
	scan  pgx.RowToFunc[T]
}

// NewCollection wraps a base query. args are the query's positional
// arguments; scan converts one row into a T (pgx.RowToStructByName and
// friends work directly).
func NewCollection[T any](pool *pgxpool.Pool, query string, args []any, scan pgx.RowToFunc[T]) *Collection[T] {
	return &Collection[T]{pool: pool, query: query, args: args, scan: scan}
}

// Len counts the rows of the base query.
func (c *Collection[T]) Len(ctx context.Context) (int, error) {
	count := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS paginate_count", c.query)

	var n int
	if err := c.pool.QueryRow(ctx, count, c.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}

// Slice fetches the rows in [start, end) by appending LIMIT/OFFSET to the
// base query.
func (c *Collection[T]) Slice(ctx context.Context, start, end int) ([]T, error) {
	if end < start {
		end = start
	}
	page := fmt.Sprintf("%s LIMIT %d OFFSET %d", c.query, end-start, start)

	rows, err := c.pool.Query(ctx, page, c.args...)
	if err != nil {
		return nil, fmt.Errorf("page query: %w", err)
	}
	items, err := pgx.CollectRows(rows, c.scan)
	if err != nil {
		return nil, fmt.Errorf("scan page rows: %w", err)
	}
	return items, nil
}
