package domain

import "io"

// ImageUpload is an image payload received from a client, not yet validated.
// OriginalName is only used to derive the stored filename.
type ImageUpload struct {
	OriginalName string
	Content      io.Reader
}
