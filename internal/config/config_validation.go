// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.ThreadPool < 1 {
		return fmt.Errorf("%w: thread pool must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Server.Backlog < 0 {
		return fmt.Errorf("%w: backlog must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Names.UseEnv && cfg.Names.EnvName == "" {
		return fmt.Errorf("%w: names env variable is empty", ErrInvalidNamesConfigs)
	}

	if !cfg.Names.UseEnv && cfg.Names.FilePath == "" {
		return fmt.Errorf("%w: names file path is empty", ErrInvalidNamesConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
