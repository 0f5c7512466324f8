package packs

import (
	"sort"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/KirkDiggler/cp2020-sheet/internal/paths"
)

// Document is one entry of a pack, e.g. a skill
type Document struct {
	ID     string         `json:"_id"`
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	System map[string]any `json:"system"`
}

// ToRecord converts the document to a plain record that shares no state
// with the document
func (d *Document) ToRecord() map[string]any {
	system := paths.Clone(d.System)
	if system == nil {
		system = make(map[string]any)
	}
	return map[string]any{
		"_id":    d.ID,
		"name":   d.Name,
		"type":   d.Type,
		"system": system,
	}
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		ID:     d.ID,
		Name:   d.Name,
		Type:   d.Type,
		System: paths.Clone(d.System),
	}
}

func cloneDocuments(docs []*Document) []*Document {
	out := make([]*Document, len(docs))
	for i, doc := range docs {
		out[i] = doc.Clone()
	}
	return out
}

func sortDocuments(docs []*Document) {
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Name != docs[j].Name {
			return docs[i].Name < docs[j].Name
		}
		return docs[i].ID < docs[j].ID
	})
}

func validatePack(pack string) error {
	if pack == "" {
		return apperr.InvalidArgument("pack name is required")
	}
	return nil
}

func validateDocuments(pack string, docs []*Document) error {
	if err := validatePack(pack); err != nil {
		return err
	}

	seen := make(map[string]bool, len(docs))
	for i, doc := range docs {
		if doc == nil {
			return apperr.InvalidArgumentf("document %d of %s is nil", i, pack)
		}
		if doc.ID == "" {
			return apperr.InvalidArgumentf("document %q of %s has no id", doc.Name, pack).
				WithMeta("pack", pack)
		}
		if seen[doc.ID] {
			return apperr.InvalidArgumentf("duplicate document id %s in %s", doc.ID, pack).
				WithMeta("pack", pack).
				WithMeta("document_id", doc.ID)
		}
		seen[doc.ID] = true
	}
	return nil
}

func packNotFound(pack string) error {
	return apperr.NotFoundf("pack %s not found", pack).WithMeta("pack", pack)
}
