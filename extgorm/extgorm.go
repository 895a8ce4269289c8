// Package extgorm paginates GORM queries.
//
// The caller supplies a prepared query scope (model plus conditions and
// ordering); the adapter runs Count for the total and Offset/Limit/Find for
// the page items:
//
//	q := db.Model(&Entry{}).Where("company = ?", c).Order("name")
//	page, err := paginate.New(ctx, extgorm.NewCollection[Entry](q), pageNum, 20)
package extgorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Collection adapts a GORM query scope to the paginate.Collection interface.
type Collection[T any] struct {
	db *gorm.DB
}

// NewCollection wraps a query scope. The scope must carry its model
// (db.Model(...) or a prior Find) so Count can infer the table.
func NewCollection[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db}
}

// Len counts the rows of the query scope.
func (c *Collection[T]) Len(ctx context.Context) (int, error) {
	var n int64
	err := c.session(ctx).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return int(n), nil
}

// Slice fetches the rows in [start, end).
func (c *Collection[T]) Slice(ctx context.Context, start, end int) ([]T, error) {
	if end < start {
		end = start
	}
	var items []T
	err := c.session(ctx).Offset(start).Limit(end - start).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("page query: %w", err)
	}
	return items, nil
}

// session derives a fresh session so Count and Find do not pollute each
// other's clauses on the shared scope.
func (c *Collection[T]) session(ctx context.Context) *gorm.DB {
	return c.db.Session(&gorm.Session{}).WithContext(ctx)
}
