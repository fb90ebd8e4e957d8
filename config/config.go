// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/DataDog/linear-internal-go/log"
	"inet.af/netaddr"
)

// Configuration environment variables
const (
	EnvLogLevel      = "DD_LINEAR_LOG_LEVEL"
	EnvDemoRotations = "DD_LINEAR_DEMO_ROTATIONS"
	EnvUpstreams     = "DD_LINEAR_UPSTREAMS"
)

// Configuration constants and default values
const (
	DefaultLogLevel = "info"
	// DefaultDemoRotations requests one full turn of the ring plus one step.
	DefaultDemoRotations = -1
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "critical", "off"}

// RingConfig holds the configuration of the ring demonstration program and of
// the round robin balancer it drives.
type RingConfig struct {
	LogLevel  string
	Rotations int
	Upstreams []netaddr.IPPort
}

// NewRingConfig creates and returns a new ring configuration by reading the env
func NewRingConfig() RingConfig {
	return RingConfig{
		LogLevel:  LogLevelFromEnv(),
		Rotations: RotationsFromEnv(),
		Upstreams: UpstreamsFromEnv(),
	}
}

// RotationCount returns the number of rotations to perform on a ring of the
// given size.
func (c RingConfig) RotationCount(size int) int {
	if c.Rotations == DefaultDemoRotations {
		return size + 1
	}
	return c.Rotations
}

// LogLevelFromEnv reads the log level, falling back to [DefaultLogLevel] when
// it is not set or is not a known level.
func LogLevelFromEnv() string {
	val, present := os.LookupEnv(EnvLogLevel)
	if !present || val == "" {
		return DefaultLogLevel
	}
	val = strings.ToLower(strings.TrimSpace(val))
	for _, level := range logLevels {
		if val == level {
			return val
		}
	}
	log.Debug("linear: %s=%s is not a valid log level. Defaulting to %s", EnvLogLevel, val, DefaultLogLevel)
	return DefaultLogLevel
}

// RotationsFromEnv reads the number of demo rotations. Unparsable or negative
// values fall back to [DefaultDemoRotations].
func RotationsFromEnv() int {
	val := os.Getenv(EnvDemoRotations)
	if val == "" {
		return DefaultDemoRotations
	}
	rotations, err := strconv.Atoi(val)
	if err != nil {
		log.Debug("linear: could not parse %s. Defaulting to %d", EnvDemoRotations, DefaultDemoRotations)
		return DefaultDemoRotations
	}
	if rotations < 0 {
		log.Debug("linear: %s value must not be negative. Defaulting to %d", EnvDemoRotations, DefaultDemoRotations)
		return DefaultDemoRotations
	}
	return rotations
}

// UpstreamsFromEnv reads the comma separated list of upstream addresses.
// Entries that are not valid ip:port pairs are skipped.
func UpstreamsFromEnv() []netaddr.IPPort {
	val, present := os.LookupEnv(EnvUpstreams)
	if !present {
		log.Debug("linear: %s not defined, starting without upstreams", EnvUpstreams)
		return nil
	}

	var upstreams []netaddr.IPPort
	for _, entry := range strings.Split(val, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		addr, err := netaddr.ParseIPPort(entry)
		if err != nil || addr.IsZero() {
			_ = log.Errorf("linear: could not parse upstream address `%s` in %s, skipping it", entry, EnvUpstreams)
			continue
		}
		upstreams = append(upstreams, addr)
	}
	return upstreams
}
