// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package locked

import (
	"runtime"
	"slices"
	"sync"
	"testing"

	"github.com/DataDog/linear-internal-go/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		queue, err := NewQueue(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, queue.Len())
		assert.Equal(t, []int{1, 2, 3}, queue.Snapshot())

		queue, err = NewQueue(1, 0, 3)
		require.ErrorIs(t, err, linear.ErrInvalidArgument)
		assert.Nil(t, queue)
	})

	t.Run("Empty", func(t *testing.T) {
		queue, err := NewQueue[string]()
		require.NoError(t, err)
		assert.Equal(t, 0, queue.Len())

		_, err = queue.Dequeue()
		require.ErrorIs(t, err, linear.ErrEmptyContainer)
		_, err = queue.First()
		require.ErrorIs(t, err, linear.ErrEmptyContainer)
		_, err = queue.Rotate()
		require.ErrorIs(t, err, linear.ErrEmptyContainer)

		assert.Equal(t, 0, queue.Len())
		assert.Zero(t, queue.Rotations())
	})

	t.Run("Operations", func(t *testing.T) {
		queue, err := NewQueue("a", "b")
		require.NoError(t, err)

		require.NoError(t, queue.Enqueue("c"))
		require.ErrorIs(t, queue.Enqueue(""), linear.ErrInvalidArgument)
		assert.Equal(t, 3, queue.Len())

		value, err := queue.Rotate()
		require.NoError(t, err)
		assert.Equal(t, "a", value)
		assert.Equal(t, uint64(1), queue.Rotations())

		first, err := queue.First()
		require.NoError(t, err)
		assert.Equal(t, "b", first)

		value, err = queue.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, "b", value)
		assert.Equal(t, 2, queue.Len())
		assert.Equal(t, []string{"c", "a"}, queue.Snapshot())
	})

	t.Run("Concurrent", func(t *testing.T) {
		queue, err := NewQueue[int]()
		require.NoError(t, err)

		var (
			goroutineCount = runtime.GOMAXPROCS(0) * 4
			perGoroutine   = 250
			barrier        sync.WaitGroup
			wg             sync.WaitGroup
		)
		barrier.Add(goroutineCount)
		for g := range goroutineCount {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Synchronize the start of all the goroutines
				barrier.Done()
				barrier.Wait()

				for i := range perGoroutine {
					assert.NoError(t, queue.Enqueue(g*perGoroutine+i+1))
					_, _ = queue.Rotate()
				}
			}()
		}
		wg.Wait()

		total := goroutineCount * perGoroutine
		require.Equal(t, total, queue.Len())
		assert.Equal(t, uint64(total), queue.Rotations())

		values := queue.Snapshot()
		slices.Sort(values)
		for i, value := range values {
			require.Equal(t, i+1, value)
		}

		// Drain concurrently; every value comes out exactly once.
		seen := make([]int, total+1)
		var mu sync.Mutex
		for range goroutineCount {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					value, err := queue.Dequeue()
					if err != nil {
						assert.ErrorIs(t, err, linear.ErrEmptyContainer)
						return
					}
					mu.Lock()
					seen[value]++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 0, queue.Len())
		for value := 1; value <= total; value++ {
			assert.Equal(t, 1, seen[value], "value %d", value)
		}
	})
}
