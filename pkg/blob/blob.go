package blob

import (
	"context"
	"io"
)

// FileReference points at a stored blob.
type FileReference struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Store persists opaque blobs under hint-prefixed keys. Pet photos and
// clinic documents both go through this interface.
type Store interface {
	Store(ctx context.Context, r io.Reader, destinationHint, filename string) (*FileReference, error)
	Delete(ctx context.Context, key string) error
	PresignURL(ctx context.Context, key string) (string, error)
}
