// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/models"
)

// DefaultCount is the number of words used when the count parameter is not
// a valid integer.
const DefaultCount = 2

type nameService struct {
	words models.WordList
	rnd   Randomizer

	logger *logger.Logger
}

// NewNameService returns a [NameService] sampling words with rnd.
// words must not be empty.
func NewNameService(words models.WordList, rnd Randomizer, logger *logger.Logger) NameService {
	return &nameService{
		words:  words,
		rnd:    rnd,
		logger: logger,
	}
}

func (s *nameService) Generate(ctx context.Context, rawCount string) string {
	return GenerateName(s.words, ParseCount(rawCount), s.rnd)
}

// ParseCount parses s as a base-10 32-bit signed integer. Anything else,
// including out-of-range values, yields [DefaultCount].
func ParseCount(s string) int {
	count, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return DefaultCount
	}

	return int(count)
}

// GenerateName concatenates count words drawn independently and uniformly
// from words, in draw order. A count <= 0 yields an empty string.
func GenerateName(words models.WordList, count int, rnd Randomizer) string {
	if count <= 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(words.At(rnd.IntN(words.Len())))
	}

	return sb.String()
}
