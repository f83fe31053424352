package output

import (
	"context"

	"gather/internal/domain"
)

// ImageStore persists event images in public storage.
type ImageStore interface {
	// Store validates the payload and persists it under a generated filename.
	// Returns domain.ErrUnsupportedImage for corrupt or unrecognized payloads.
	Store(ctx context.Context, upload domain.ImageUpload) (string, error)
	// Remove deletes a stored image; removing an absent image is not an error.
	Remove(ctx context.Context, name string) error
}
