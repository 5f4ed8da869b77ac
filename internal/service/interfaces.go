//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"
)

// NameService produces random names from the word list loaded at startup.
type NameService interface {
	// Generate parses rawCount with [ParseCount] and returns that many words
	// drawn uniformly with replacement and concatenated without separator.
	Generate(ctx context.Context, rawCount string) string
}

// Randomizer is the source of uniform random indexes used by the generator.
// Implementations must be safe for concurrent use: one instance is shared by
// every request goroutine.
type Randomizer interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}
