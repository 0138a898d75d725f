package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/rulekit"
)

// DefaultKey is the per-language fallback entry used when a predicate has no
// template of its own.
const DefaultKey = "default"

// Catalog holds per-language message templates keyed by predicate name.
// Templates use the core placeholder syntax: {field}, {predicate}, and any
// rule parameter by name. A catalog is immutable after construction and safe
// for concurrent use.
type Catalog struct {
	tags      []language.Tag
	templates []map[string]string
	matcher   language.Matcher
	logger    *slog.Logger
}

// Option configures catalog construction.
type Option func(*config)

type config struct {
	defaultLang string
	logger      *slog.Logger
}

// WithDefaultLanguage sets the language used when negotiation finds no match.
// It must be one of the catalog's languages; the first language in sorted
// order is the default otherwise.
func WithDefaultLanguage(lang string) Option {
	return func(c *config) {
		c.defaultLang = lang
	}
}

// WithLogger sets the logger used to report template misses. Logging is
// discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog builds a catalog from language-keyed message maps:
//
//	cat, err := i18n.NewCatalog(map[string]map[string]string{
//	    "en": {"default": "{field} is invalid", "min": "{field} must be at least {value}"},
//	    "de": {"default": "{field} ist ungültig"},
//	})
//
// Language keys must be valid BCP 47 tags.
func NewCatalog(messages map[string]map[string]string, opts ...Option) (*Catalog, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	langs := make([]string, 0, len(messages))
	for lang := range messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	// The matcher falls back to its first tag, so the default language is
	// moved to the front.
	if cfg.defaultLang != "" {
		if _, ok := messages[cfg.defaultLang]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, cfg.defaultLang)
		}
		for i, lang := range langs {
			if lang == cfg.defaultLang {
				langs = append(langs[:i], langs[i+1:]...)
				break
			}
		}
		langs = append([]string{cfg.defaultLang}, langs...)
	}

	cat := &Catalog{
		tags:      make([]language.Tag, 0, len(langs)),
		templates: make([]map[string]string, 0, len(langs)),
		logger:    cfg.logger,
	}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		msgs := make(map[string]string, len(messages[lang]))
		for predicate, tpl := range messages[lang] {
			msgs[predicate] = tpl
		}
		cat.tags = append(cat.tags, tag)
		cat.templates = append(cat.templates, msgs)
	}
	cat.matcher = language.NewMatcher(cat.tags)
	return cat, nil
}

// Languages returns the catalog's language tags, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Match negotiates the best catalog language for the requested one. The
// request may be a single BCP 47 tag or a full Accept-Language list; an
// empty or unparseable request resolves to the default language.
func (c *Catalog) Match(lang string) string {
	return c.tags[c.match(lang)].String()
}

func (c *Catalog) match(lang string) int {
	_, index, _ := language.MatchStrings(c.matcher, lang)
	return index
}

// MessageFunc adapts the catalog and a requested language into a message
// renderer:
//
//	v, err := rulekit.Build(rs, reg, rulekit.WithMessageFunc(cat.MessageFunc(lang)))
//
// Language negotiation happens once, not per failure. Lookup falls back from
// the predicate's template to the language's default entry, and from there to
// rulekit.DefaultMessageTemplate.
func (c *Catalog) MessageFunc(lang string) rulekit.MessageFunc {
	index := c.match(lang)
	matched := c.tags[index].String()

	return func(field rulekit.Path, predicate string, params rulekit.Params) string {
		tpl := c.template(index, matched, predicate)
		return rulekit.RenderTemplate(tpl, field, predicate, params)
	}
}

func (c *Catalog) template(index int, lang, predicate string) string {
	msgs := c.templates[index]
	if tpl, ok := msgs[predicate]; ok {
		return tpl
	}
	if tpl, ok := msgs[DefaultKey]; ok {
		c.logger.Debug("message template missing", "lang", lang, "predicate", predicate)
		return tpl
	}
	c.logger.Debug("language has no default template", "lang", lang, "predicate", predicate)
	return rulekit.DefaultMessageTemplate
}
