package storage

import (
	"context"
	"fmt"
	"sync"
)

// MockImageStore implements ImageStore in memory for tests and local
// development
type MockImageStore struct {
	mu      sync.Mutex
	counter int
	images  map[string]bool

	// FailUpload makes Upload return an error
	FailUpload bool
}

// NewMockImageStore creates a new MockImageStore
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{images: make(map[string]bool)}
}

// Upload records the image and returns a fake public URL
func (s *MockImageStore) Upload(ctx context.Context, dataURL string) (string, error) {
	if s.FailUpload {
		return "", fmt.Errorf("mock image store: upload failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	url := fmt.Sprintf("https://images.mock.local/products/%d.png", s.counter)
	s.images[url] = true
	return url, nil
}

// Delete forgets a previously uploaded image
func (s *MockImageStore) Delete(ctx context.Context, imageURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, imageURL)
	return nil
}

// Has reports whether the URL is currently stored
func (s *MockImageStore) Has(imageURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.images[imageURL]
}
