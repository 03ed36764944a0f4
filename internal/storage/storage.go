package storage

import (
	"context"
	"io"
)

// Uploader stores resume bytes and returns a reference to the stored object.
// Implementations: GCS (real delivery) and Simulated (reference-only).
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}
