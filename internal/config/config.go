// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-name-gen server. It aggregates all sub-configurations and is populated
// by merging built-in defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds the bind address and request concurrency settings of the
	// HTTP listener.
	Server Server `envPrefix:"SERVER_"`

	// Names selects and locates the word source the generator samples from.
	Names Names `envPrefix:"NAMES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimal zerolog level that is emitted
	// (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and concurrency settings for the HTTP listener.
type Server struct {
	// Host is the network interface to bind to (e.g. "0.0.0.0").
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port to bind to.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// ThreadPool is the maximum number of requests served at the same time.
	// Env: SERVER_THREAD_POOL
	ThreadPool int `env:"THREAD_POOL"`

	// Backlog is the number of requests allowed to wait for a free slot once
	// ThreadPool requests are in flight.
	// Env: SERVER_BACKLOG
	Backlog int `env:"BACKLOG"`

	// BacklogTimeout is how long a request may wait in the backlog.
	// Env: SERVER_BACKLOG_TIMEOUT
	BacklogTimeout time.Duration `env:"BACKLOG_TIMEOUT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// Address returns the listener address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Names describes where the word list is loaded from.
type Names struct {
	// UseEnv selects the environment variable source over the file source.
	// Env: NAMES_USE_ENV
	UseEnv bool `env:"USE_ENV"`

	// FilePath is the comma-delimited word file read when UseEnv is false.
	// Env: NAMES_FILE
	FilePath string `env:"FILE"`

	// EnvName is the environment variable read when UseEnv is true.
	// Env: NAMES_ENV
	EnvName string `env:"ENV"`

	// Seed makes name generation reproducible when non-zero.
	// Env: NAMES_SEED
	Seed uint64 `env:"SEED"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables (a ".env" file in the working directory is loaded first)
//  4. Command-line flags that were explicitly set on fs
//
// fs must already be parsed and must carry the flags registered by
// [RegisterFlags].
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
