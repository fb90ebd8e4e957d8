// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log is a thin indirection over the logging backend in use. By
// default, messages are forwarded to the Datadog agent logger; a different
// [Backend] can be installed with [SetBackend].
package log

import (
	"fmt"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of functions used to emit log messages at each level.
// All fields must be set.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var backend = atomic.NewPointer(&defaultBackend)

// defaultBackend forwards to the Datadog agent logger. The error-returning
// levels build their error with [fmt.Errorf] so that %w verbs are honored.
var defaultBackend = Backend{
	Trace: ddlog.Tracef,
	Debug: ddlog.Debugf,
	Info:  ddlog.Infof,
	Warn: func(format string, args ...any) {
		_ = ddlog.Warnf(format, args...)
	},
	Errorf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Error(err.Error())
		return err
	},
	Criticalf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Critical(err.Error())
		return err
	},
}

// SetBackend replaces the logging backend.
func SetBackend(b Backend) {
	backend.Store(&b)
}

// Trace logs a message at the trace level.
func Trace(format string, args ...any) {
	backend.Load().Trace(format, args...)
}

// Debug logs a message at the debug level.
func Debug(format string, args ...any) {
	backend.Load().Debug(format, args...)
}

// Info logs a message at the info level.
func Info(format string, args ...any) {
	backend.Load().Info(format, args...)
}

// Warn logs a message at the warning level.
func Warn(format string, args ...any) {
	backend.Load().Warn(format, args...)
}

// Errorf logs a message at the error level, and returns it as an error.
func Errorf(format string, args ...any) error {
	return backend.Load().Errorf(format, args...)
}

// Criticalf logs a message at the critical level, and returns it as an error.
func Criticalf(format string, args ...any) error {
	return backend.Load().Criticalf(format, args...)
}
