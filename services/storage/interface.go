package storage

import (
	"context"
	"io"
)

// StorageService uploads media files and returns their public URLs.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}
