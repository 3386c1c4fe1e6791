package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages serves rows out of a fixed slice, recording how many page
// requests it got.
func fakePages(all []int) (*int, PageFunc[int]) {
	calls := new(int)
	return calls, func(ctx context.Context, offset, limit int) ([]int, error) {
		*calls++
		if offset >= len(all) {
			return nil, nil
		}
		end := offset + limit
		if end > len(all) {
			end = len(all)
		}
		return all[offset:end], nil
	}
}

func TestLoadAllShortPageTerminates(t *testing.T) {
	all := make([]int, 2345)
	for i := range all {
		all[i] = i
	}
	calls, page := fakePages(all)

	got, err := LoadAll(context.Background(), 1000, page)
	require.NoError(t, err)
	assert.Equal(t, all, got)
	// 1000, 1000, 345: the short third page stops the walk
	assert.Equal(t, 3, *calls)
}

func TestLoadAllExactMultiple(t *testing.T) {
	all := make([]int, 2000)
	calls, page := fakePages(all)

	got, err := LoadAll(context.Background(), 1000, page)
	require.NoError(t, err)
	assert.Len(t, got, 2000)
	// full second page forces one more request, which comes back empty
	assert.Equal(t, 3, *calls)
}

func TestLoadAllEmpty(t *testing.T) {
	calls, page := fakePages(nil)

	got, err := LoadAll(context.Background(), 1000, page)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, *calls)
}

func TestLoadAllPropagatesError(t *testing.T) {
	boom := errors.New("select failed")
	_, err := LoadAll(context.Background(), 1000, func(ctx context.Context, offset, limit int) ([]int, error) {
		if offset >= 1000 {
			return nil, boom
		}
		return make([]int, limit), nil
	})
	assert.ErrorIs(t, err, boom)
}
