// Package storage gives read access to the blob store that holds submitted
// document content. Uploads happen upstream; this service only checks that a
// blob arrived and hands out time-limited download links.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrObjectNotFound is returned when no object exists under a key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is a read-only view of an S3-compatible bucket.
type Storage interface {
	// Stat returns object info, or ErrObjectNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
