package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/storage"
)

// UploadService stores media files in blob storage and hands back
// public URLs for embedding in content records.
type UploadService struct {
	store storage.BlobStore
}

// NewUploadService creates a new UploadService.
func NewUploadService(store storage.BlobStore) *UploadService {
	return &UploadService{store: store}
}

// UploadInput carries a single file upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

const maxUploadBytes = 50 << 20 // 50 MiB

// Upload writes the file under a random key and returns its public URL.
// Keys are prefixed with "uploads/" and carry a UUID so repeated uploads
// of the same filename never collide.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (string, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return "", models.NewValidationError("Filename is required")
	}
	if len(in.Content) == 0 {
		return "", models.NewValidationError("File content is empty")
	}
	if len(in.Content) > maxUploadBytes {
		return "", models.NewValidationError("File too large (max 50 MiB)")
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := "uploads/" + uuid.New().String() + "-" + sanitizeFilename(in.Filename)
	url, err := s.store.Put(ctx, key, contentType, in.Content)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return url, nil
}

// sanitizeFilename strips path separators and whitespace so the filename
// component cannot escape the uploads prefix.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		" ", "_",
		"..", "_",
	)
	return replacer.Replace(name)
}
