// Package storage keeps uploaded image assets on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix uploads are served under.
const PublicPrefix = "/uploads"

// UploadStore writes uploads into a single directory under generated
// collision-resistant names: millisecond timestamp, a random suffix and the
// original file name. No content-type or size validation is performed.
type UploadStore struct {
	dir string
}

// NewUploadStore prepares the upload directory, creating it when absent.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *UploadStore) Dir() string { return s.dir }

// Save stores src and returns the public retrieval path.
func (s *UploadStore) Save(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		filepath.Base(originalName),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storage: write upload: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Remove deletes the asset behind a previously returned path. Only the base
// name is used, so a stored URL cannot escape the upload directory.
func (s *UploadStore) Remove(imageURL string) error {
	if imageURL == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, filepath.Base(imageURL)))
}
