package storage

import (
	"errors"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
)

const maxImageSize = 5 * 1024 * 1024

var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrFileType     = errors.New("invalid file type")
	ErrFileTooLarge = errors.New("file too large")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// DiskImageStore writes uploaded images to a local directory and shapes the
// public URL they are served under.
type DiskImageStore struct {
	dir string
}

var _ ports.ImageStore = (*DiskImageStore)(nil)

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{dir: dir}
}

// Validate applies the upload gate: allow-listed extension, non-empty
// payload, at most 5 MiB.
func Validate(filename string, size int64) error {
	if size == 0 {
		return ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrFileType
	}

	if size > maxImageSize {
		return ErrFileTooLarge
	}

	return nil
}

func (s *DiskImageStore) Save(filename string, size int64, content io.Reader, baseURL string) (string, error) {
	if err := Validate(filename, size); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	// Unique name per upload, so concurrent requests never collide.
	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	target, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(target, content); err != nil {
		_ = target.Close()
		return "", err
	}
	if err := target.Close(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(baseURL, "/") + "/images/" + storedName, nil
}

// Remove resolves a previously stored URL back to its local file and deletes
// it. A file that is already gone is not an error.
func (s *DiskImageStore) Remove(imageURL string) error {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return err
	}

	storedName := path.Base(parsed.Path)
	if storedName == "." || storedName == "/" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
