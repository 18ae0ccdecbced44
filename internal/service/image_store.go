package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images to the local filesystem under a
// configured root directory. Stored paths are the relative URLs handed
// back to clients, e.g. "/uploads/projects/<uuid>_<name>".
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

func (s *ImageStore) Root() string {
	return s.root
}

func (s *ImageStore) SaveProjectImage(file io.Reader, filename string) (string, error) {
	dir := filepath.Join(s.root, "projects")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	name := uuid.New().String() + "_" + filepath.Base(filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/uploads/projects/" + name, nil
}

// DeleteProjectImage removes a previously stored image. Blank paths and
// already-missing files are ignored. Only the basename of the stored
// path is used, so stored values cannot escape the uploads directory.
func (s *ImageStore) DeleteProjectImage(imagePath string) {
	if imagePath == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.root, "projects", filepath.Base(imagePath)))
}
