package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// SimulatedUploader stores nothing. It fabricates a deterministic reference
// of the form simulated-uploads/{epoch-millis}-{name} so the rest of the
// system can treat the resume as stored. Used when no bucket is configured.
type SimulatedUploader struct {
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewSimulatedUploader() *SimulatedUploader {
	return &SimulatedUploader{Now: time.Now}
}

func (u *SimulatedUploader) Upload(_ context.Context, objectName string, _ string, _ io.Reader) (string, error) {
	now := u.Now
	if now == nil {
		now = time.Now
	}
	return fmt.Sprintf("simulated-uploads/%d-%s", now().UnixMilli(), objectName), nil
}
