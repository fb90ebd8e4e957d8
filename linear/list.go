// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package linear provides simple linear containers: a doubly linked
// [LinkedList] of caller-owned [Node] values, a singly linked [Stack], and a
// singly linked ring [CircularQueue].
//
// None of the containers are safe for concurrent use; callers needing shared
// access must synchronize externally (see the locked package). Mutating a
// container while one of its iterators is in use has undefined results.
package linear

import (
	"fmt"
	"iter"
	"strings"
)

// LinkedList is a doubly linked list of [Node] values. The zero value is an
// empty list ready to use.
type LinkedList[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// NewList creates a new [LinkedList] holding the single provided node, which
// becomes both its head and its tail. It returns [ErrInvalidArgument] if node
// is nil.
func NewList[T any](node *Node[T]) (*LinkedList[T], error) {
	if node == nil {
		return nil, opError("NewList", ErrInvalidArgument)
	}
	node.unlink()
	return &LinkedList[T]{head: node, tail: node, size: 1}, nil
}

// Head returns the first node of the list, or nil if the list is empty.
func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node of the list, or nil if the list is empty.
func (l *LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Len returns the number of nodes in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Append links the node at the end of the list, making it the new tail.
func (l *LinkedList[T]) Append(node *Node[T]) error {
	if node == nil {
		return opError("LinkedList.Append", ErrInvalidArgument)
	}

	node.prev = l.tail
	node.next = nil
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
	return nil
}

// InsertHead links the node at the front of the list, making it the new head.
func (l *LinkedList[T]) InsertHead(node *Node[T]) error {
	if node == nil {
		return opError("LinkedList.InsertHead", ErrInvalidArgument)
	}

	node.prev = nil
	node.next = l.head
	if l.head == nil {
		l.tail = node
	} else {
		l.head.prev = node
	}
	l.head = node
	l.size++
	return nil
}

// PopHead detaches the head of the list and returns it, with its links
// cleared.
func (l *LinkedList[T]) PopHead() (*Node[T], error) {
	if l.size == 0 {
		return nil, opError("LinkedList.PopHead", ErrEmptyContainer)
	}

	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	node.unlink()
	l.size--
	return node, nil
}

// PopTail detaches the tail of the list and returns it, with its links
// cleared.
func (l *LinkedList[T]) PopTail() (*Node[T], error) {
	if l.size == 0 {
		return nil, opError("LinkedList.PopTail", ErrEmptyContainer)
	}

	node := l.tail
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	node.unlink()
	l.size--
	return node, nil
}

// All returns an iterator over the nodes of the list, from head to tail.
func (l *LinkedList[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}

// Values returns an iterator over the values held by the list, from head to
// tail.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range l.All() {
			if !yield(node.Value) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total_size=%d ", l.size)
	for node := range l.All() {
		fmt.Fprintf(&sb, "(%s)->", node)
	}
	return sb.String()
}
