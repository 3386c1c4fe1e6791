package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadBatchesChunking(t *testing.T) {
	rows := make([]int, 2500)
	for i := range rows {
		rows[i] = i
	}

	var sizes []int
	var persisted int
	err := UploadBatches(context.Background(), rows, 1000, func(ctx context.Context, batch []int) error {
		sizes = append(sizes, len(batch))
		persisted += len(batch)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1000, 1000, 500}, sizes)
	assert.Equal(t, 2500, persisted)
}

func TestUploadBatchesAbortsOnFirstFailure(t *testing.T) {
	rows := make([]int, 2500)
	boom := errors.New("insert failed")

	var calls, persisted int
	err := UploadBatches(context.Background(), rows, 1000, func(ctx context.Context, batch []int) error {
		calls++
		if calls == 2 {
			return boom
		}
		persisted += len(batch)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "batch 2")

	// the first chunk stays persisted, the third is never attempted
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1000, persisted)
}

func TestUploadBatchesEmpty(t *testing.T) {
	err := UploadBatches(context.Background(), nil, 500, func(ctx context.Context, batch []int) error {
		t.Fatal("insert should not be called for empty input")
		return nil
	})
	require.NoError(t, err)
}

func TestUploadBatchesBadSize(t *testing.T) {
	err := UploadBatches(context.Background(), []int{1}, 0, func(ctx context.Context, batch []int) error {
		return nil
	})
	require.Error(t, err)
}

func TestDatasetBatchSize(t *testing.T) {
	assert.Equal(t, 500, DatasetSavant.BatchSize())
	assert.Equal(t, 1000, DatasetRapsodoPitching.BatchSize())
	assert.Equal(t, 1000, DatasetRapsodoBatting.BatchSize())
	assert.Equal(t, 1000, DatasetBlast.BatchSize())
}

func TestDatasetValid(t *testing.T) {
	assert.True(t, DatasetSavant.Valid())
	assert.True(t, DatasetBlast.Valid())
	assert.False(t, Dataset("trackman").Valid())
	assert.False(t, Dataset("").Valid())
}
