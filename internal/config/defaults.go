package config

import "time"

const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultThreadPool        = 10
	DefaultBacklog           = 100
	DefaultBacklogTimeout    = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultLogLevel          = "debug"
	DefaultNamesFile         = "names.txt"
	DefaultNamesEnv          = "RANDOMNAMES"

	dotEnvFile = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ThreadPool:        DefaultThreadPool,
			Backlog:           DefaultBacklog,
			BacklogTimeout:    DefaultBacklogTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Names: Names{
			FilePath: DefaultNamesFile,
			EnvName:  DefaultNamesEnv,
		},
	}
}
