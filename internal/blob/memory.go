package blob

import (
	"context"
	"io"
	"sync"

	"github.com/kallosgym/cms/remote"
)

// MemoryStore is an in-memory object store for tests and scaffolding.
type MemoryStore struct {
	mu        sync.RWMutex
	objects   map[string][]byte
	types     map[string]string
	urlPrefix string
}

// NewMemory creates an empty in-memory object store. URLs are formed by
// joining prefix and key.
func NewMemory(urlPrefix string) *MemoryStore {
	return &MemoryStore{
		objects:   make(map[string][]byte),
		types:     make(map[string]string),
		urlPrefix: urlPrefix,
	}
}

var _ remote.ObjectStore = (*MemoryStore)(nil)

func (s *MemoryStore) Put(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType
	return s.urlPrefix + "/" + key, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	delete(s.types, key)
	return nil
}

// Object returns the stored bytes and content type for key.
func (s *MemoryStore) Object(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, "", false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, s.types[key], true
}

// Len reports how many objects are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
