// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package roundrobin cycles through a set of upstream addresses by rotating a
// ring of them, one position per pick.
package roundrobin

import (
	"github.com/DataDog/linear-internal-go/config"
	"github.com/DataDog/linear-internal-go/locked"
	"github.com/DataDog/linear-internal-go/log"
	"inet.af/netaddr"
)

// Balancer hands out upstream addresses in round robin order. It is safe for
// concurrent use.
type Balancer struct {
	ring *locked.Queue[netaddr.IPPort]
}

// New creates a [Balancer] over the provided addresses. The first call to
// [Balancer.Next] returns the first address. Zero addresses are rejected with
// [linear.ErrInvalidArgument].
func New(addrs ...netaddr.IPPort) (*Balancer, error) {
	ring, err := locked.NewQueue(addrs...)
	if err != nil {
		return nil, err
	}
	return &Balancer{ring: ring}, nil
}

// FromConfig creates a [Balancer] over the upstreams of the configuration.
func FromConfig(cfg config.RingConfig) (*Balancer, error) {
	b, err := New(cfg.Upstreams...)
	if err != nil {
		return nil, log.Errorf("roundrobin: invalid upstream configuration: %w", err)
	}
	log.Debug("roundrobin: balancing over %d upstream(s)", b.Len())
	return b, nil
}

// Add places the address last in the rotation order.
func (b *Balancer) Add(addr netaddr.IPPort) error {
	return b.ring.Enqueue(addr)
}

// Next returns the next address in the rotation. It returns
// [linear.ErrEmptyContainer] when the balancer holds no address.
func (b *Balancer) Next() (netaddr.IPPort, error) {
	addr, err := b.ring.Rotate()
	if err != nil {
		return netaddr.IPPort{}, err
	}
	log.Trace("roundrobin: picked %s", addr)
	return addr, nil
}

// Remove takes the address that [Balancer.Next] would return next out of the
// rotation, and returns it.
func (b *Balancer) Remove() (netaddr.IPPort, error) {
	return b.ring.Dequeue()
}

// Len returns the number of addresses in the rotation.
func (b *Balancer) Len() int {
	return b.ring.Len()
}

// Picks returns the number of addresses handed out so far.
func (b *Balancer) Picks() uint64 {
	return b.ring.Rotations()
}

// Addrs returns the addresses in the order they will be handed out.
func (b *Balancer) Addrs() []netaddr.IPPort {
	return b.ring.Snapshot()
}
