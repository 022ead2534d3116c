// Package storage persists the ledger collections as named blobs.
//
// Each collection is one document that is read once at startup and
// overwritten wholesale on every mutation; there are no partial updates
// and no versioning.
package storage

import (
	"context"
	"errors"
)

// Collection blob keys.
const (
	KeyBuses       = "buses"
	KeyRemittances = "remittances"
	KeyEmployees   = "employees"
)

var ErrEmptyKey = errors.New("blob key cannot be empty")

// Blob is a named document handed to Save.
type Blob struct {
	Key  string
	Data []byte
}

// BlobStore is the persistence boundary of the ledger.
type BlobStore interface {
	// Load returns the blob stored under key. ok is false when nothing was
	// ever saved under that key.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Save overwrites every given blob. Backends that support it write all
	// blobs of one call atomically.
	Save(ctx context.Context, blobs ...Blob) error
	Close() error
}

func validate(blobs []Blob) error {
	for _, b := range blobs {
		if b.Key == "" {
			return ErrEmptyKey
		}
	}
	return nil
}
