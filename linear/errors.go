// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operation that requires a node or
	// a value receives an absent one (a nil node, or the zero value of the
	// element type for [CircularQueue.Enqueue]).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyContainer is returned when a removal or peek operation is invoked
	// on a container holding no elements.
	ErrEmptyContainer = errors.New("container is empty")
)

// opError wraps one of the sentinel errors with the name of the operation that
// produced it.
func opError(op string, err error) error {
	return fmt.Errorf("linear: %s: %w", op, err)
}
