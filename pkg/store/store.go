// Package store keeps uploaded scene files so they can be rendered later by ID.
//
// Scenes are stored verbatim together with their format; IDs are random
// UUIDs. [MemoryStore] serves tests and single-process use; [MongoStore]
// persists scenes in a MongoDB collection for the HTTP service.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Record is one stored scene.
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	Format    string    `bson:"format" json:"format"`
	Data      []byte    `bson:"data" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Store persists scene records.
type Store interface {
	// Put stores data and returns the new record.
	Put(ctx context.Context, format string, data []byte) (Record, error)
	// Get returns the record with id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (Record, error)
	// Delete removes the record with id, or returns a NOT_FOUND error.
	Delete(ctx context.Context, id string) error
	// Close releases resources held by the store.
	Close(ctx context.Context) error
}

// NewID returns a fresh record ID.
func NewID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a UUID as produced by [NewID].
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid scene id %q", id)
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "scene %s not found", id)
}
