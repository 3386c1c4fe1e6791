package store

import (
	"context"
	"fmt"
)

// InsertFunc persists one chunk of rows; the remote insert is all-or-nothing
// per call.
type InsertFunc[T any] func(ctx context.Context, batch []T) error

// UploadBatches submits rows in consecutive fixed-size chunks, strictly
// sequentially. The first failing chunk aborts the whole upload: earlier
// chunks stay persisted (there is no compensating delete) and later chunks
// are never attempted. The returned error names the failing batch.
func UploadBatches[T any](ctx context.Context, rows []T, batchSize int, insert InsertFunc[T]) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := insert(ctx, rows[i:end]); err != nil {
			return fmt.Errorf("uploading batch %d (%d rows): %w", i/batchSize+1, end-i, err)
		}
	}
	return nil
}
