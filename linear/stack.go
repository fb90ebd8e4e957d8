// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linear

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// Stack is a singly linked LIFO container. The zero value is an empty stack
	// ready to use.
	Stack[T any] struct {
		head *stackNode[T]
		size int
	}

	// stackNode is a node in a [Stack].
	stackNode[T any] struct {
		value T
		next  *stackNode[T]
	}
)

// NewStack creates a new, empty [Stack].
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty returns true if the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Push places the value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &stackNode[T]{value: value, next: s.head}
	s.size++
}

// Pop removes the value on top of the stack and returns it.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, opError("Stack.Pop", ErrEmptyContainer)
	}

	node := s.head
	s.head = node.next
	node.next = nil
	s.size--
	return node.value, nil
}

// Top returns the value on top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, opError("Stack.Top", ErrEmptyContainer)
	}
	return s.head.value, nil
}

// All returns an iterator over the values on the stack, from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := s.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Stack: ")
	for value := range s.All() {
		fmt.Fprintf(&sb, "%v|", value)
	}
	return sb.String()
}
