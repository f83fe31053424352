package storage

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gather/internal/domain"
	"gather/internal/ports/output"
)

var _ output.ImageStore = (*DiskImageStore)(nil)

// maxImageBytes caps uploads at 8 MiB.
const maxImageBytes = 8 << 20

// extensions maps accepted sniffed content types to stored file extensions.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskImageStore writes event images to a public directory. Filenames are
// md5(original name + unix timestamp) plus the sniffed extension, so
// re-uploads of the same file never collide.
type DiskImageStore struct {
	dir string

	// now is swappable in tests.
	now func() time.Time
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image store: create dir: %w", err)
	}
	return &DiskImageStore{dir: dir, now: time.Now}, nil
}

func (s *DiskImageStore) Store(_ context.Context, upload domain.ImageUpload) (string, error) {
	payload, err := io.ReadAll(io.LimitReader(upload.Content, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("image store: read payload: %w", err)
	}
	if len(payload) == 0 || len(payload) > maxImageBytes {
		return "", domain.ErrUnsupportedImage
	}
	ext, ok := extensions[http.DetectContentType(payload)]
	if !ok {
		return "", domain.ErrUnsupportedImage
	}
	sum := md5.Sum([]byte(upload.OriginalName + strconv.FormatInt(s.now().Unix(), 10)))
	name := fmt.Sprintf("%x%s", sum, ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), payload, 0o644); err != nil {
		return "", fmt.Errorf("image store: write %s: %w", name, err)
	}
	return name, nil
}

func (s *DiskImageStore) Remove(_ context.Context, name string) error {
	// Base strips any path components a stored name should never contain.
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("image store: remove %s: %w", name, err)
	}
	return nil
}

// Path returns the absolute on-disk path for a stored image name.
func (s *DiskImageStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
