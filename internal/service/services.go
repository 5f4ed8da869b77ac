package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-name-gen/internal/app"
	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/store"
)

type Services struct {
	NameService NameService
}

// NewServices loads the word list from storages and builds the services on
// top of it. Errors of the word source are wrapped and returned unchanged
// in kind, so callers can match them with errors.Is.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.Names, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg(app.MsgLoadingNames)

	words, err := storages.WordSource.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading names: %w", err)
	}
	logger.Info().Int("count", words.Len()).Msg(app.MsgNamesLoaded)

	rnd := NewRandomizer()
	if cfg.Seed != 0 {
		logger.Debug().Uint64("seed", cfg.Seed).Msg("using seeded randomizer")
		rnd = NewSeededRandomizer(cfg.Seed)
	}

	return &Services{
		NameService: NewNameService(words, rnd, logger),
	}, nil
}
