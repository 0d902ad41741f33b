package messages

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// DefaultLanguage is used when no better match exists.
const DefaultLanguage = "en"

// Renderer turns structured failures into localized text.
// It is read-only after construction and safe for concurrent use.
type Renderer struct {
	catalog     Catalog
	defaultLang string
	langs       []string
	tags        []language.Tag
	matcher     language.Matcher
}

type Option func(*Renderer)

// WithDefaultLanguage sets the fallback language. Ignored if the catalog lacks it.
func WithDefaultLanguage(lang string) Option {
	return func(r *Renderer) {
		if _, ok := r.catalog[lang]; ok {
			r.defaultLang = lang
		}
	}
}

// NewRenderer creates a renderer over c.
func NewRenderer(c Catalog, opts ...Option) (*Renderer, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCatalog
	}

	r := &Renderer{catalog: c, defaultLang: DefaultLanguage}
	if _, ok := c[r.defaultLang]; !ok {
		r.defaultLang = c.Languages()[0]
	}
	for _, opt := range opts {
		opt(r)
	}

	// The default language goes first so the matcher falls back to it.
	r.langs = append(r.langs, r.defaultLang)
	for _, lang := range c.Languages() {
		if lang != r.defaultLang {
			r.langs = append(r.langs, lang)
		}
	}
	r.tags = make([]language.Tag, len(r.langs))
	for i, lang := range r.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalog, err)
		}
		r.tags[i] = tag
	}
	r.matcher = language.NewMatcher(r.tags)

	return r, nil
}

// Language returns the catalog language that best serves lang,
// which may be a tag ("de-AT") or an Accept-Language value.
func (r *Renderer) Language(lang string) string {
	if lang == "" {
		return r.defaultLang
	}
	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return r.defaultLang
	}
	_, idx, conf := r.matcher.Match(desired...)
	if conf == language.No {
		return r.defaultLang
	}
	return r.langs[idx]
}

// Render returns the message for e in the best matching language.
// Numbers are formatted with the conventions of that language.
func (r *Renderer) Render(lang string, e validator.ValidationError) string {
	lang = r.Language(lang)

	tmpl, ok := r.catalog.Lookup(lang, e.TranslationKey())
	if !ok {
		tmpl, ok = r.catalog.Lookup(r.defaultLang, e.TranslationKey())
	}
	if !ok {
		tmpl = e.Kind.Template()
	}

	p := message.NewPrinter(r.tags[r.index(lang)])
	return validator.Interpolate(tmpl, e.TranslationValues(), func(v any) string {
		return p.Sprint(v)
	})
}

// RenderAll groups the messages of every failure in err by field.
// Scalar failures are reported under the empty field name.
func (r *Renderer) RenderAll(lang string, err error) map[string][]string {
	errs := validator.Errors(err)
	if errs == nil {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], r.Render(lang, e))
	}
	return out
}

func (r *Renderer) index(lang string) int {
	for i, l := range r.langs {
		if l == lang {
			return i
		}
	}
	return 0
}
