package packs

//go:generate mockgen -destination=mock/mock_repository.go -package=mockpacks -source=repository.go

import (
	"context"
)

// Pack names shipped with the module
const (
	DefaultSkillsPack   = "cyberpunk2020.default-skills"
	DefaultSkillsPackRU = "cyberpunk2020.default-skills-ru"
)

// Repository stores compendium packs of documents
type Repository interface {
	// GetDocuments returns every document of a pack, sorted by name then id
	GetDocuments(ctx context.Context, pack string) ([]*Document, error)

	// SaveDocuments replaces the contents of a pack, creating it if needed
	SaveDocuments(ctx context.Context, pack string, docs []*Document) error

	// ListPacks returns the names of all stored packs, sorted
	ListPacks(ctx context.Context) ([]string, error)
}
