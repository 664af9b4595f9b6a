package storage

import "context"

// ImageStore persists product images and serves them by public URL
type ImageStore interface {
	// Upload stores an image given as a base64 data URL and returns its
	// public URL
	Upload(ctx context.Context, dataURL string) (string, error)
	// Delete removes a previously uploaded image by its public URL.
	// Unknown URLs are ignored.
	Delete(ctx context.Context, imageURL string) error
}
