// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package locked provides concurrency-safe wrappers over the containers of
// the linear package, which themselves provide no synchronization.
package locked

import (
	"slices"
	"sync"

	"github.com/DataDog/linear-internal-go/linear"
	"go.uber.org/atomic"
)

// Queue is a [linear.CircularQueue] guarded by a mutex. It is safe for
// concurrent use.
type Queue[T comparable] struct {
	mu    sync.Mutex
	queue *linear.CircularQueue[T]

	// size mirrors queue.Len(), so that [Queue.Len] does not need the lock.
	size atomic.Int64
	// rotations counts successful calls to [Queue.Rotate].
	rotations atomic.Uint64
}

// NewQueue creates a new [Queue] holding the provided values, in order. It
// returns [linear.ErrInvalidArgument] if any of them is the zero value of T,
// in which case no queue is created.
func NewQueue[T comparable](values ...T) (*Queue[T], error) {
	queue := linear.NewCircularQueue[T]()
	for _, value := range values {
		if err := queue.Enqueue(value); err != nil {
			return nil, err
		}
	}

	q := &Queue[T]{queue: queue}
	q.size.Store(int64(queue.Len()))
	return q, nil
}

// Enqueue adds the value at the end of the queue.
func (q *Queue[T]) Enqueue(value T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.queue.Enqueue(value); err != nil {
		return err
	}
	q.size.Inc()
	return nil
}

// Dequeue removes the value at the head of the queue and returns it.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	value, err := q.queue.Dequeue()
	if err != nil {
		return value, err
	}
	q.size.Dec()
	return value, nil
}

// First returns the value at the head of the queue.
func (q *Queue[T]) First() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.queue.First()
}

// Rotate advances the tail of the queue by one position and returns the value
// now at the tail.
func (q *Queue[T]) Rotate() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	value, err := q.queue.Rotate()
	if err != nil {
		return value, err
	}
	q.rotations.Inc()
	return value, nil
}

// Len returns the number of values in the queue. It does not block on
// concurrent operations, and may be stale by the time it returns.
func (q *Queue[T]) Len() int {
	return int(q.size.Load())
}

// Rotations returns the number of successful rotations performed so far.
func (q *Queue[T]) Rotations() uint64 {
	return q.rotations.Load()
}

// Snapshot returns a copy of the values of the queue, from head to tail.
func (q *Queue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Collect(q.queue.All())
}
