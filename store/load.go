package store

import "context"

// PageFunc reads one page of rows at the given offset.
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// LoadAll reads the whole collection page by page, strictly sequentially,
// stopping at the first short or empty page. Idempotent: a repeat call over
// unchanged persisted state yields the same rows.
func LoadAll[T any](ctx context.Context, pageSize int, page PageFunc[T]) ([]T, error) {
	var all []T
	for offset := 0; ; offset += pageSize {
		rows, err := page(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) < pageSize {
			return all, nil
		}
	}
}
