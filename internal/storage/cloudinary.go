package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore keeps files in Cloudinary. The relative path is the
// Cloudinary public ID, so Delete can address the asset later.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore initializes a Cloudinary-backed store.
func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Save uploads data and returns the assigned public ID.
func (s *CloudinaryStore) Save(ctx context.Context, data []byte, filename string) (string, error) {
	publicID := strings.TrimSuffix(filename, filepath.Ext(filename))
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	return result.PublicID, nil
}

// Delete destroys the asset. Unknown public IDs are not an error.
func (s *CloudinaryStore) Delete(ctx context.Context, relativePath string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: relativePath})
	if err != nil {
		return fmt.Errorf("destroy cloudinary asset: %w", err)
	}
	return nil
}
