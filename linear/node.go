// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linear

import "fmt"

// Node is a node in a [LinkedList]. A node belongs to at most one list at a
// time; its links are cleared when it is removed from that list.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
}

// NewNode creates a new, unlinked [Node] holding the given value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Prev returns the node preceding this one, or nil if this is the head of its
// list (or is not in a list).
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next returns the node following this one, or nil if this is the tail of its
// list (or is not in a list).
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("value=%v", n.Value)
}

// unlink clears both links of the node.
func (n *Node[T]) unlink() {
	n.prev = nil
	n.next = nil
}
