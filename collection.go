package paginate

import "context"

// Collection is the capability a paged-through collection must provide:
// report its total length and return a contiguous ordered sub-range. An
// implementation that cannot do either returns an error, which New surfaces
// as an ECOLLECTION-coded *Error.
//
// Slice uses 0-based half-open index ranges, so the items of a computed
// State are fetched with Slice(ctx, FirstItem-1, LastItem).
type Collection[T any] interface {
	// Len returns the total number of items in the collection.
	Len(ctx context.Context) (int, error)

	// Slice returns the items in [start, end). Both bounds are
	// guaranteed to be within [0, Len()] when called by this package.
	Slice(ctx context.Context, start, end int) ([]T, error)
}

// SliceCollection adapts an in-memory slice to the Collection interface.
type SliceCollection[T any] []T

func (c SliceCollection[T]) Len(ctx context.Context) (int, error) {
	return len(c), nil
}

func (c SliceCollection[T]) Slice(ctx context.Context, start, end int) ([]T, error) {
	if start < 0 || end > len(c) || start > end {
		return nil, Errorf(ECOLLECTION, "collection.slice",
			"range [%d, %d) out of bounds for %d items", start, end, len(c))
	}
	return c[start:end], nil
}

// Page combines the page-boundary arithmetic of a State with the items on
// the current page. The items are fetched once at construction.
type Page[T any] struct {
	State

	// Items holds the items on the current page, in collection order.
	Items []T
}

// New builds a Page: it counts the collection, computes the page state for
// the requested page and fetches the current page's items.
//
// Counting the collection on every call can be expensive for query-backed
// collections; use NewWithCount when the total is already known.
//
// Errors carry the ECOLLECTION code and distinguish a collection that
// cannot report its length (op "page.count") from one that cannot produce
// the item range (op "page.slice").
func New[T any](ctx context.Context, coll Collection[T], page, itemsPerPage int) (*Page[T], error) {
	count, err := coll.Len(ctx)
	if err != nil {
		return nil, Wrap(err, ECOLLECTION, "page.count", "collection cannot report its length")
	}
	return fetch(ctx, coll, Compute(count, page, itemsPerPage))
}

// NewWithCount builds a Page like New but trusts the caller-supplied item
// count instead of counting the collection.
func NewWithCount[T any](ctx context.Context, coll Collection[T], page, itemsPerPage, itemCount int) (*Page[T], error) {
	return fetch(ctx, coll, Compute(itemCount, page, itemsPerPage))
}

// NewFromSlice builds a Page over an in-memory slice. It cannot fail.
func NewFromSlice[T any](items []T, page, itemsPerPage int) *Page[T] {
	p, _ := New(context.Background(), SliceCollection[T](items), page, itemsPerPage)
	return p
}

func fetch[T any](ctx context.Context, coll Collection[T], s State) (*Page[T], error) {
	p := &Page[T]{State: s}
	if s.PageCount == 0 {
		return p, nil
	}
	items, err := coll.Slice(ctx, s.FirstItem-1, s.LastItem)
	if err != nil {
		return nil, Wrap(err, ECOLLECTION, "page.slice", "collection cannot produce the item range")
	}
	p.Items = items
	return p, nil
}
