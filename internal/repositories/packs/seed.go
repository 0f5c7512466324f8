package packs

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"sort"

	goccy "github.com/goccy/go-json"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/KirkDiggler/cp2020-sheet/internal/uuid"
)

//go:embed seed/*.json
var seedFS embed.FS

type seedFile struct {
	Pack      string      `json:"pack"`
	Documents []*Document `json:"documents"`
}

// SeedPacks returns the packs shipped with the module keyed by pack name.
// Documents without an id get one from gen.
func SeedPacks(gen uuid.Generator) (map[string][]*Document, error) {
	files, err := fs.Glob(seedFS, "seed/*.json")
	if err != nil {
		return nil, apperr.Wrap(err, "failed to glob seed packs")
	}
	sort.Strings(files)

	out := make(map[string][]*Document, len(files))
	for _, file := range files {
		data, err := seedFS.ReadFile(file)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to read %s", file)
		}

		var seed seedFile
		if err := goccy.Unmarshal(data, &seed); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to parse "+file)
		}
		if seed.Pack == "" {
			return nil, apperr.Internalf("seed file %s has no pack name", file)
		}

		for _, doc := range seed.Documents {
			if doc.ID == "" {
				doc.ID = gen.New()
			}
		}
		out[seed.Pack] = seed.Documents
	}

	return out, nil
}

// Seed saves every shipped pack that repo does not have yet and returns the
// names of the packs it wrote. Existing packs are never touched.
func Seed(ctx context.Context, repo Repository, gen uuid.Generator) ([]string, error) {
	existing, err := repo.ListPacks(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list packs before seeding")
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	seeds, err := SeedPacks(gen)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)

	seeded := []string{}
	for _, name := range names {
		if have[name] {
			continue
		}
		if err := repo.SaveDocuments(ctx, name, seeds[name]); err != nil {
			return seeded, apperr.Wrapf(err, "failed to seed pack %s", name)
		}
		log.Printf("Seeded pack %s with %d documents", name, len(seeds[name]))
		seeded = append(seeded, name)
	}

	return seeded, nil
}
