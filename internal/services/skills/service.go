package skills

import (
	"context"
	"log"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/KirkDiggler/cp2020-sheet/internal/i18n"
	"github.com/KirkDiggler/cp2020-sheet/internal/paths"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
	"github.com/KirkDiggler/cp2020-sheet/internal/textutil"
)

const (
	// LocalizationKeyPrefix prefixes the sanitized skill name
	LocalizationKeyPrefix = i18n.Namespace + "Skill"

	// LocalizationKeyPath is where the key is written on each record
	LocalizationKeyPath = "system.localizationKey"

	// DefaultCacheTTL is used when the config leaves CacheTTL unset
	DefaultCacheTTL = 10 * time.Minute

	maxCachedPacks = 16
)

// Service loads the default skill list for a character sheet
type Service interface {
	// DefaultSkills returns the skill records of the pack for lang. Every
	// call returns fresh records the caller may mutate.
	DefaultSkills(ctx context.Context, lang string) ([]map[string]any, error)

	// PackForLanguage names the skill pack used for lang
	PackForLanguage(lang string) string
}

type service struct {
	repository packs.Repository
	cache      cache.Cache[string, []*packs.Document]
	group      singleflight.Group
}

// ServiceConfig holds configuration for the skill service
type ServiceConfig struct {
	Repository packs.Repository
	CacheTTL   time.Duration // Optional - DefaultCacheTTL if zero
}

// NewService creates a new skill service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("pack repository is required")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &service{
		repository: cfg.Repository,
		cache: cache.NewCache[string, []*packs.Document]().
			WithTTL(ttl).
			WithMaxKeys(maxCachedPacks),
	}
}

// PackForLanguage implements Service
func (s *service) PackForLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return packs.DefaultSkillsPack
	}

	if base, _ := tag.Base(); base.String() == "ru" {
		return packs.DefaultSkillsPackRU
	}

	return packs.DefaultSkillsPack
}

// DefaultSkills implements Service
func (s *service) DefaultSkills(ctx context.Context, lang string) ([]map[string]any, error) {
	pack := s.PackForLanguage(lang)

	docs, err := s.loadPack(ctx, pack)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		record, err := paths.Set(doc.ToRecord(), LocalizationKeyPath,
			LocalizationKeyPrefix+textutil.SanitizeSkillName(doc.Name), true)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to key skill %s", doc.Name)
		}
		records = append(records, record)
	}

	return records, nil
}

// loadPack returns the cached documents of pack. Cached slices are never
// handed out; callers only see records built from them. A shared load runs
// detached from any one caller's cancellation; each caller stops waiting
// when its own ctx is done.
func (s *service) loadPack(ctx context.Context, pack string) ([]*packs.Document, error) {
	if docs, ok := s.cache.Get(pack); ok {
		return docs, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(pack, func() (any, error) {
		if docs, ok := s.cache.Get(pack); ok {
			return docs, nil
		}

		log.Printf("Loading skill pack %s", pack)
		docs, err := s.repository.GetDocuments(loadCtx, pack)
		if err != nil {
			return nil, err
		}

		s.cache.Set(pack, docs, 0)
		return docs, nil
	})

	select {
	case <-ctx.Done():
		return nil, apperr.Wrapf(ctx.Err(), "failed to load skill pack %s", pack)
	case res := <-ch:
		if res.Err != nil {
			return nil, apperr.Wrapf(res.Err, "failed to load skill pack %s", pack)
		}
		return res.Val.([]*packs.Document), nil
	}
}
