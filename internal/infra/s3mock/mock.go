package s3mock

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

const scheme = "mock://"

// S3Storage keeps uploaded images in memory. Used when no object storage is
// configured.
type S3Storage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func New() *S3Storage {
	return &S3Storage{objects: make(map[string][]byte)}
}

func (s *S3Storage) Save(ctx context.Context, obj model.FileObject) (string, error) {
	key := obj.GetParent() + "/" + uuid.NewString() + "-" + obj.GetFilename()

	s.mu.Lock()
	s.objects[key] = obj.GetContent()
	s.mu.Unlock()

	return scheme + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, scheme)
	if !ok {
		return nil
	}

	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *S3Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
