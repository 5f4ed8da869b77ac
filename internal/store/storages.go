package store

import (
	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/logger"
)

// Storages groups the data sources used by the service layer.
type Storages struct {
	WordSource WordSource
}

// NewStorages selects the word source described by cfg: the environment
// variable cfg.EnvName when cfg.UseEnv is set, the file cfg.FilePath otherwise.
func NewStorages(cfg config.Names, logger *logger.Logger) *Storages {
	logger.Info().Bool("use_env", cfg.UseEnv).Msg("creating new storages...")

	var source WordSource
	if cfg.UseEnv {
		source = NewEnvWordSource(cfg.EnvName, logger)
	} else {
		source = NewFileWordSource(cfg.FilePath, logger)
	}

	return &Storages{
		WordSource: source,
	}
}
