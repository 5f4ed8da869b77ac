package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535 or an empty thread pool).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNamesConfigs indicates an unusable word source selection
	// (for example, an empty names file path).
	ErrInvalidNamesConfigs = errors.New("invalid names configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
