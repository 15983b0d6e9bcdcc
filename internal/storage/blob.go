// Package storage provides blob storage for uploaded media files.
package storage

import (
	"context"
)

// BlobStore writes uploaded files to durable storage and returns the
// public URL the client embeds in a media array. Implementations do no
// content inspection; whatever the provider accepts is stored as-is.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
