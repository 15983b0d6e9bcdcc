// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"context"
	"sync"
)

// BlobStoreStub is an in-memory storage.BlobStore implementation for tests.
type BlobStoreStub struct {
	mu      sync.Mutex
	BaseURL string
	Objects map[string][]byte
	Types   map[string]string
	Err     error
}

// NewBlobStoreStub creates an empty in-memory blob store.
func NewBlobStoreStub() *BlobStoreStub {
	return &BlobStoreStub{
		BaseURL: "https://blobs.test/lycka-media",
		Objects: make(map[string][]byte),
		Types:   make(map[string]string),
	}
}

// Put records the object and returns its would-be public URL.
func (s *BlobStoreStub) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.Objects[key] = cp
	s.Types[key] = contentType
	return s.BaseURL + "/" + key, nil
}

// Keys returns the stored object keys in no particular order.
func (s *BlobStoreStub) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.Objects))
	for k := range s.Objects {
		keys = append(keys, k)
	}
	return keys
}
