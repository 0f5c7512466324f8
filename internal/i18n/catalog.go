package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	goccy "github.com/goccy/go-json"
	"golang.org/x/text/language"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

const (
	// Namespace prefixes every key the sheet looks up
	Namespace = "CYBERPUNK."

	// BaseLang is the language every other catalog falls back to
	BaseLang = "en"
)

// Localizer resolves namespaced keys to display text
type Localizer interface {
	// Lang is the language the localizer was selected for
	Lang() string

	// Has reports whether key has a translation
	Has(key string) bool

	// Localize returns the translation of key, or key itself when missing
	Localize(key string) string

	// Format localizes key and fills {name} placeholders from params
	Format(key string, params map[string]any) string
}

//go:embed lang/*.json
var embeddedLangFS embed.FS

var placeholderPattern = regexp.MustCompile(`\{[^}]+\}`)

// Catalog is a flat key to text map with an optional fallback catalog
type Catalog struct {
	lang     string
	messages map[string]string
	fallback *Catalog
}

// NewCatalog creates a catalog; fallback may be nil
func NewCatalog(lang string, messages map[string]string, fallback *Catalog) *Catalog {
	copied := make(map[string]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}
	return &Catalog{
		lang:     lang,
		messages: copied,
		fallback: fallback,
	}
}

// Lang implements Localizer
func (c *Catalog) Lang() string {
	return c.lang
}

// Has implements Localizer
func (c *Catalog) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Localize implements Localizer
func (c *Catalog) Localize(key string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	return key
}

// Format implements Localizer
func (c *Catalog) Format(key string, params map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(c.Localize(key), func(token string) string {
		value, ok := params[token[1:len(token)-1]]
		if !ok {
			return token
		}
		return fmt.Sprint(value)
	})
}

func (c *Catalog) lookup(key string) (string, bool) {
	for catalog := c; catalog != nil; catalog = catalog.fallback {
		if value, ok := catalog.messages[key]; ok {
			return value, true
		}
	}
	return "", false
}

// Bundle holds one catalog per language
type Bundle struct {
	catalogs map[string]*Catalog
	tags     []language.Tag
	langs    []string
	matcher  language.Matcher
}

// LoadEmbedded loads the catalogs shipped with the module
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLangFS)
}

// LoadFromFS loads lang/<code>.json files from fsys
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "lang/*.json")
	if err != nil {
		return nil, apperr.Wrap(err, "failed to glob language files")
	}
	if len(files) == 0 {
		return nil, apperr.NotFound("no language files found")
	}
	sort.Strings(files)

	raw := make(map[string]map[string]string, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to read %s", file)
		}

		var messages map[string]string
		if err := goccy.Unmarshal(data, &messages); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", file))
		}

		raw[strings.TrimSuffix(path.Base(file), ".json")] = messages
	}

	baseMessages, ok := raw[BaseLang]
	if !ok {
		return nil, apperr.Validationf("base language %s is not defined", BaseLang)
	}
	base := NewCatalog(BaseLang, baseMessages, nil)

	bundle := &Bundle{
		catalogs: map[string]*Catalog{BaseLang: base},
		tags:     []language.Tag{language.Make(BaseLang)},
		langs:    []string{BaseLang},
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")
		if lang == BaseLang {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeValidation, fmt.Sprintf("invalid language file name %s", file))
		}
		bundle.catalogs[lang] = NewCatalog(lang, raw[lang], base)
		bundle.tags = append(bundle.tags, tag)
		bundle.langs = append(bundle.langs, lang)
	}

	bundle.matcher = language.NewMatcher(bundle.tags)
	return bundle, nil
}

// Languages lists the loaded language codes, base language first
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.langs))
	copy(out, b.langs)
	return out
}

// Localizer returns the closest catalog for lang, e.g. "ru-RU" selects "ru".
// Unknown or unparsable languages get the base catalog.
func (b *Bundle) Localizer(lang string) Localizer {
	return b.catalog(lang)
}

func (b *Bundle) catalog(lang string) *Catalog {
	if c, ok := b.catalogs[lang]; ok {
		return c
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return b.catalogs[BaseLang]
	}

	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return b.catalogs[BaseLang]
	}
	return b.catalogs[b.langs[index]]
}
