package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	flagUseEnv     = "use-env"
	flagHost       = "host"
	flagPort       = "port"
	flagNamesFile  = "names-file"
	flagNamesEnv   = "names-env"
	flagThreadPool = "thread-pool"
	flagSeed       = "seed"
	flagConfig     = "config"
	flagLogLevel   = "log-level"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-e/--use-env     read the word list from the environment instead of a file
//	-h/--host        bind address
//	-p/--port        bind port
//	-f/--names-file  word file path
//	--names-env      environment variable holding the word list
//	--thread-pool    max number of requests served concurrently
//	--seed           seed for reproducible name generation (0 = random)
//	-c/--config      json file path with configs
//	--log-level      minimal log level
//
// Defaults shown in the usage text are informational: only flags explicitly
// set on the command line override the other configuration sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP(flagUseEnv, "e", false, "Read names from the environment variable instead of the names file")
	fs.StringP(flagHost, "h", DefaultHost, "Bind address")
	fs.IntP(flagPort, "p", DefaultPort, "Bind port")
	fs.StringP(flagNamesFile, "f", DefaultNamesFile, "Names file path")
	fs.String(flagNamesEnv, DefaultNamesEnv, "Environment variable holding the names")
	fs.Int(flagThreadPool, DefaultThreadPool, "Max number of requests served concurrently")
	fs.Uint64(flagSeed, 0, "Seed for reproducible names (0 = random)")
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.String(flagLogLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// flagSetter writes the value of one explicitly set flag into cfg.
type flagSetter func(cfg *StructuredConfig)

// parseFlags converts the flags that were explicitly set on an already
// parsed fs into a [StructuredConfig] layer.
//
// The layer alone cannot carry zero values (false, 0, "") through the mergo
// merge, so a setter is returned for every changed flag as well; the builder
// applies them on top of the merged result.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, []flagSetter, error) {
	cfg := new(StructuredConfig)
	var setters []flagSetter
	var err error

	if fs.Changed(flagUseEnv) {
		if cfg.Names.UseEnv, err = fs.GetBool(flagUseEnv); err != nil {
			return nil, nil, wrapFlagErr(flagUseEnv, err)
		}
		v := cfg.Names.UseEnv
		setters = append(setters, func(c *StructuredConfig) { c.Names.UseEnv = v })
	}
	if fs.Changed(flagHost) {
		if cfg.Server.Host, err = fs.GetString(flagHost); err != nil {
			return nil, nil, wrapFlagErr(flagHost, err)
		}
		v := cfg.Server.Host
		setters = append(setters, func(c *StructuredConfig) { c.Server.Host = v })
	}
	if fs.Changed(flagPort) {
		if cfg.Server.Port, err = fs.GetInt(flagPort); err != nil {
			return nil, nil, wrapFlagErr(flagPort, err)
		}
		v := cfg.Server.Port
		setters = append(setters, func(c *StructuredConfig) { c.Server.Port = v })
	}
	if fs.Changed(flagNamesFile) {
		if cfg.Names.FilePath, err = fs.GetString(flagNamesFile); err != nil {
			return nil, nil, wrapFlagErr(flagNamesFile, err)
		}
		v := cfg.Names.FilePath
		setters = append(setters, func(c *StructuredConfig) { c.Names.FilePath = v })
	}
	if fs.Changed(flagNamesEnv) {
		if cfg.Names.EnvName, err = fs.GetString(flagNamesEnv); err != nil {
			return nil, nil, wrapFlagErr(flagNamesEnv, err)
		}
		v := cfg.Names.EnvName
		setters = append(setters, func(c *StructuredConfig) { c.Names.EnvName = v })
	}
	if fs.Changed(flagThreadPool) {
		if cfg.Server.ThreadPool, err = fs.GetInt(flagThreadPool); err != nil {
			return nil, nil, wrapFlagErr(flagThreadPool, err)
		}
		v := cfg.Server.ThreadPool
		setters = append(setters, func(c *StructuredConfig) { c.Server.ThreadPool = v })
	}
	if fs.Changed(flagSeed) {
		if cfg.Names.Seed, err = fs.GetUint64(flagSeed); err != nil {
			return nil, nil, wrapFlagErr(flagSeed, err)
		}
		v := cfg.Names.Seed
		setters = append(setters, func(c *StructuredConfig) { c.Names.Seed = v })
	}
	if fs.Changed(flagConfig) {
		if cfg.JSONFilePath, err = fs.GetString(flagConfig); err != nil {
			return nil, nil, wrapFlagErr(flagConfig, err)
		}
		v := cfg.JSONFilePath
		setters = append(setters, func(c *StructuredConfig) { c.JSONFilePath = v })
	}
	if fs.Changed(flagLogLevel) {
		if cfg.App.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
			return nil, nil, wrapFlagErr(flagLogLevel, err)
		}
		v := cfg.App.LogLevel
		setters = append(setters, func(c *StructuredConfig) { c.App.LogLevel = v })
	}

	return cfg, setters, nil
}

func wrapFlagErr(name string, err error) error {
	return fmt.Errorf("error reading flag --%s: %w", name, err)
}
