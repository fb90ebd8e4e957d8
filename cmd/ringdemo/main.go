// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Command ringdemo exercises a [linear.CircularQueue]: it fills a ring, rotates
// it around, and lists its contents. When upstreams are configured, it also
// hands them out in round robin order.
package main

import (
	"fmt"
	"io"
	"os"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"github.com/DataDog/linear-internal-go/config"
	"github.com/DataDog/linear-internal-go/linear"
	"github.com/DataDog/linear-internal-go/log"
	"github.com/DataDog/linear-internal-go/roundrobin"
	"github.com/cihub/seelog"
)

func main() {
	cfg := config.NewRingConfig()
	ddlog.SetupLogger(seelog.Default, cfg.LogLevel)
	defer ddlog.Flush()

	if err := run(os.Stdout, cfg); err != nil {
		_ = log.Criticalf("ringdemo: %v", err)
		ddlog.Flush()
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config.RingConfig) error {
	queue := linear.NewCircularQueueWith[any](-1)
	printSizeAndTail(w, queue)

	for _, value := range []any{3, 4, "tom", 8} {
		if err := queue.Enqueue(value); err != nil {
			return fmt.Errorf("enqueue %v: %w", value, err)
		}
	}
	printSizeAndTail(w, queue)

	for range cfg.RotationCount(queue.Len()) {
		value, err := queue.Rotate()
		if err != nil {
			return fmt.Errorf("rotate: %w", err)
		}
		fmt.Fprintf(w, "%v;", value)
	}
	fmt.Fprintln(w)

	printSizeAndTail(w, queue)
	for value := range queue.All() {
		fmt.Fprintf(w, "%v,", value)
	}
	fmt.Fprintln(w)
	log.Debug("ringdemo: %s", queue)

	if len(cfg.Upstreams) == 0 {
		return nil
	}

	balancer, err := roundrobin.FromConfig(cfg)
	if err != nil {
		return err
	}
	for range cfg.RotationCount(balancer.Len()) {
		addr, err := balancer.Next()
		if err != nil {
			return fmt.Errorf("next upstream: %w", err)
		}
		fmt.Fprintf(w, "%s;", addr)
	}
	fmt.Fprintln(w)
	log.Info("ringdemo: handed out %d upstream address(es)", balancer.Picks())
	return nil
}

func printSizeAndTail(w io.Writer, queue *linear.CircularQueue[any]) {
	tail, _ := queue.Tail()
	fmt.Fprintf(w, "Size: %d, Tail: %v\n", queue.Len(), tail)
}
