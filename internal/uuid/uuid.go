// uuid generates document ids behind an interface so tests can fix them
package uuid

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DocumentIDLength is the length of ids handed to pack documents
const DocumentIDLength = 16

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator produces full RFC 4122 UUID strings
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// DocumentIDGenerator produces short dash-free ids in the style of
// compendium document ids
type DocumentIDGenerator struct{}

// New generates a DocumentIDLength character id
func (g *DocumentIDGenerator) New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:DocumentIDLength]
}

// NewDocumentIDGenerator creates a new DocumentIDGenerator
func NewDocumentIDGenerator() *DocumentIDGenerator {
	return &DocumentIDGenerator{}
}

// SequenceGenerator returns prefix-1, prefix-2, ... for deterministic tests
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a SequenceGenerator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
