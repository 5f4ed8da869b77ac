//go:generate mockgen -source=interfaces.go -destination=../mock/word_source_mock.go -package=mock
package store

import (
	"context"

	"github.com/MKhiriev/go-name-gen/models"
)

// WordSource loads the word list the name generator samples from.
//
// Load is called once at startup. It returns a non-empty, normalized
// [models.WordList] or one of the sentinel errors of this package:
// [ErrNamesEnvNotSet], [ErrNamesFileCreated] or [ErrWordListEmpty].
type WordSource interface {
	Load(ctx context.Context) (models.WordList, error)
}
