// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-name-gen/internal/app"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/models"
)

// maxNamesLineSize bounds a single line of the names file.
const maxNamesLineSize = 1 << 20

// fileWordSource reads the word list from a text file. Every line holds one
// or more comma-separated entries; the entries of all lines are concatenated.
//
// A missing file is scaffolded: an empty file is created and
// [ErrNamesFileCreated] is returned so the operator can fill it in.
type fileWordSource struct {
	path string

	logger *logger.Logger
}

// NewFileWordSource returns a [WordSource] reading the file at path.
func NewFileWordSource(path string, logger *logger.Logger) WordSource {
	return &fileWordSource{
		path:   path,
		logger: logger,
	}
}

func (s *fileWordSource) Load(ctx context.Context) (models.WordList, error) {
	if err := ctx.Err(); err != nil {
		return models.WordList{}, err
	}

	raw, err := s.readEntries()
	if err != nil {
		return models.WordList{}, err
	}

	words := models.NewWordList(raw...)
	if words.IsEmpty() {
		return models.WordList{}, fmt.Errorf("%w: file %s", ErrWordListEmpty, s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("count", words.Len()).Msg("names read from file")
	return words, nil
}

func (s *fileWordSource) readEntries() ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, s.scaffold()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingNamesFile, err)
	}
	defer f.Close()

	var raw []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxNamesLineSize)
	for scanner.Scan() {
		raw = append(raw, strings.Split(scanner.Text(), ",")...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingNamesFile, err)
	}

	return raw, nil
}

// scaffold creates an empty names file. When creation fails the failure is
// only logged and nil is returned: loading carries on with no entries and the
// empty word list check stops the startup.
func (s *fileWordSource) scaffold() error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg(app.MsgNamesFileCreateFailed)
		return nil
	}

	if err := f.Close(); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg(app.MsgNamesFileCreateFailed)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrNamesFileCreated, s.path)
}
