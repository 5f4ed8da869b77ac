package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/models"
)

// envWordSource reads the word list from a single environment variable.
// Both ',' and ';' separate entries.
type envWordSource struct {
	name string

	logger *logger.Logger
}

// NewEnvWordSource returns a [WordSource] reading the variable name.
func NewEnvWordSource(name string, logger *logger.Logger) WordSource {
	return &envWordSource{
		name:   name,
		logger: logger,
	}
}

func (s *envWordSource) Load(ctx context.Context) (models.WordList, error) {
	if err := ctx.Err(); err != nil {
		return models.WordList{}, err
	}

	value, ok := os.LookupEnv(s.name)
	if !ok {
		return models.WordList{}, fmt.Errorf("%w: %s", ErrNamesEnvNotSet, s.name)
	}

	words := models.NewWordList(splitEnvValue(value)...)
	if words.IsEmpty() {
		return models.WordList{}, fmt.Errorf("%w: variable %s", ErrWordListEmpty, s.name)
	}

	s.logger.Debug().Str("env", s.name).Int("count", words.Len()).Msg("names read from environment")
	return words, nil
}

// splitEnvValue treats commas as semicolons and splits on semicolons.
func splitEnvValue(value string) []string {
	return strings.Split(strings.ReplaceAll(value, ",", ";"), ";")
}
