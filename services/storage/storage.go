package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService backed by Cloudinary.
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewStorageService creates a StorageService using the given Cloudinary client.
func NewStorageService(client *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{client: client}
}

// UploadFile uploads the file under the given folder and returns the secure URL.
// The public id embeds a timestamp so repeated uploads of the same filename do
// not clobber each other.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	publicID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)

	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
