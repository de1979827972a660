package storage

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded image files and maps between object keys and public URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}
