// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linear

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

type (
	// CircularQueue is a FIFO queue backed by a singly linked ring of nodes. Only
	// the tail (the most recently enqueued node) is held; the head is always
	// found at tail.next. The zero value is an empty queue ready to use.
	CircularQueue[T comparable] struct {
		tail *ringNode[T] // nil if and only if size is 0
		size int
	}

	// ringNode is a node in a [CircularQueue].
	ringNode[T comparable] struct {
		value T
		next  *ringNode[T]
	}
)

// NewCircularQueue creates a new, empty [CircularQueue].
func NewCircularQueue[T comparable]() *CircularQueue[T] {
	return &CircularQueue[T]{}
}

// NewCircularQueueWith creates a new [CircularQueue] holding the single
// provided value. Unlike [CircularQueue.Enqueue], the value is not checked
// against the zero value.
func NewCircularQueueWith[T comparable](value T) *CircularQueue[T] {
	return &CircularQueue[T]{tail: newRing(value), size: 1}
}

// newRing returns a single node linked to itself.
func newRing[T comparable](value T) *ringNode[T] {
	node := &ringNode[T]{value: value}
	node.next = node
	return node
}

// Len returns the number of values in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// IsEmpty returns true if the queue holds no values.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Tail returns the most recently enqueued value (or the value most recently
// rotated to the tail). It returns false if the queue is empty.
func (q *CircularQueue[T]) Tail() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.tail.value, true
}

// First returns the value at the head of the queue, which is the next value
// [CircularQueue.Dequeue] would return.
func (q *CircularQueue[T]) First() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, opError("CircularQueue.First", ErrEmptyContainer)
	}
	return q.tail.next.value, nil
}

// Enqueue adds the value at the end of the queue. Zero values are treated as
// absent and rejected with [ErrInvalidArgument]: a queue cannot hold 0, "" or
// nil, including when T is an interface type holding one of them.
func (q *CircularQueue[T]) Enqueue(value T) error {
	if isAbsent(value) {
		return opError("CircularQueue.Enqueue", ErrInvalidArgument)
	}

	if q.IsEmpty() {
		q.tail = newRing(value)
		q.size = 1
		return nil
	}

	// The new node goes between the tail and the head, then becomes the tail.
	node := &ringNode[T]{value: value, next: q.tail.next}
	q.tail.next = node
	q.tail = node
	q.size++
	return nil
}

// Dequeue removes the value at the head of the queue and returns it.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, opError("CircularQueue.Dequeue", ErrEmptyContainer)
	}

	node := q.tail.next
	q.tail.next = node.next
	node.next = nil
	q.size--
	if q.size == 0 {
		q.tail = nil
	}
	return node.value, nil
}

// Rotate advances the tail by one position around the ring: the current head
// becomes the tail, and its successor becomes the head. It returns the value
// now at the tail. Rotating [CircularQueue.Len] times restores the original
// order.
func (q *CircularQueue[T]) Rotate() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, opError("CircularQueue.Rotate", ErrEmptyContainer)
	}
	q.tail = q.tail.next
	return q.tail.value, nil
}

// isAbsent returns true if value is nil or the zero value of its dynamic type.
func isAbsent[T any](value T) bool {
	v := any(value)
	return v == nil || reflect.ValueOf(v).IsZero()
}

// All returns an iterator over the values of the queue, from head to tail. It
// yields exactly [CircularQueue.Len] values and does not alter the queue.
func (q *CircularQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.IsEmpty() {
			return
		}
		node := q.tail.next
		for range q.size {
			if !yield(node.value) {
				return
			}
			node = node.next
		}
	}
}

func (q *CircularQueue[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CircularQueue: size=%d", q.size)
	if tail, ok := q.Tail(); ok {
		fmt.Fprintf(&sb, " tail=%v", tail)
	}
	sb.WriteString(" [")
	first := true
	for value := range q.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", value)
	}
	sb.WriteByte(']')
	return sb.String()
}
