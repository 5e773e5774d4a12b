package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload uploads a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// FullPath resolves a stored key to an absolute filesystem path
	FullPath(path string) (string, error)
}
