// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

package log_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DataDog/linear-internal-go/linear"
	"github.com/DataDog/linear-internal-go/log"
	"github.com/stretchr/testify/require"
)

// recorder captures the last message logged at each level.
type recorder map[string]string

func (r recorder) backend() log.Backend {
	record := func(level string) func(string, ...any) {
		return func(format string, args ...any) {
			r[level] = fmt.Sprintf(format, args...)
		}
	}
	recordErr := func(level string) func(string, ...any) error {
		return func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			r[level] = err.Error()
			return err
		}
	}
	return log.Backend{
		Trace:     record("trace"),
		Debug:     record("debug"),
		Info:      record("info"),
		Warn:      record("warn"),
		Errorf:    recordErr("error"),
		Criticalf: recordErr("critical"),
	}
}

func TestBackend(t *testing.T) {
	rec := recorder{}
	log.SetBackend(rec.backend())

	for level, logger := range map[string]func(string, ...any){
		"trace": log.Trace,
		"debug": log.Debug,
		"info":  log.Info,
		"warn":  log.Warn,
	} {
		t.Run(level, func(t *testing.T) {
			clear(rec)

			logger("ring of %d at %s", 3, level)

			require.Len(t, rec, 1)
			require.Equal(t, fmt.Sprintf("ring of %d at %s", 3, level), rec[level])
		})
	}

	for level, logger := range map[string]func(string, ...any) error{
		"error":    log.Errorf,
		"critical": log.Criticalf,
	} {
		t.Run(level, func(t *testing.T) {
			clear(rec)

			err := logger("dequeue at %s: %w", level, linear.ErrEmptyContainer)

			expectedMessage := fmt.Sprintf("dequeue at %s: %v", level, linear.ErrEmptyContainer)
			require.Equal(t, expectedMessage, err.Error())
			require.True(t, errors.Is(err, linear.ErrEmptyContainer))
			require.Len(t, rec, 1)
			require.Equal(t, expectedMessage, rec[level])
		})
	}
}
