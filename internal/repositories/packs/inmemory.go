package packs

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository keeps packs in process memory.
// Useful for testing and for running without Redis or SQLite.
type InMemoryRepository struct {
	mu    sync.RWMutex
	packs map[string][]*Document
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		packs: make(map[string][]*Document),
	}
}

// GetDocuments implements Repository
func (r *InMemoryRepository) GetDocuments(ctx context.Context, pack string) ([]*Document, error) {
	if err := validatePack(pack); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	docs, ok := r.packs[pack]
	if !ok {
		return nil, packNotFound(pack)
	}

	return cloneDocuments(docs), nil
}

// SaveDocuments implements Repository
func (r *InMemoryRepository) SaveDocuments(ctx context.Context, pack string, docs []*Document) error {
	if err := validateDocuments(pack, docs); err != nil {
		return err
	}

	stored := cloneDocuments(docs)
	sortDocuments(stored)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.packs[pack] = stored

	return nil
}

// ListPacks implements Repository
func (r *InMemoryRepository) ListPacks(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.packs))
	for name := range r.packs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
