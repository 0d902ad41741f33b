package messages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog maps language → dotted message key → template.
type Catalog map[string]map[string]string

// Default returns the catalogs shipped with the package.
func Default() Catalog {
	c, err := LoadFS(context.Background(), builtin, "locales")
	if err != nil {
		panic(fmt.Sprintf("messages: built-in catalog: %v", err))
	}
	return c
}

// Parse decodes content with p into a Catalog, flattening nested keys.
func Parse(ctx context.Context, p Parser, content []byte) (Catalog, error) {
	data, err := p.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	c := make(Catalog, len(data))
	for lang, entries := range data {
		flat := make(map[string]string)
		if err := flatten("", entries, flat); err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		c[lang] = flat
	}
	return c, nil
}

// LoadFS reads every supported file in dir and merges the results in file
// name order. Later files override earlier ones.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && ParserForFile(e.Name()) != nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := Catalog{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToRead, err)
		}
		c, err := Parse(ctx, ParserForFile(name), content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = out.Merge(c)
	}

	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// Merge returns a new catalog with entries of other layered over c.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for _, src := range []Catalog{c, other} {
		for lang, entries := range src {
			if out[lang] == nil {
				out[lang] = make(map[string]string, len(entries))
			}
			for k, v := range entries {
				out[lang][k] = v
			}
		}
	}
	return out
}

// Languages returns the catalog languages sorted.
func (c Catalog) Languages() []string {
	langs := make([]string, 0, len(c))
	for lang := range c {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the template for key in lang.
func (c Catalog) Lookup(lang, key string) (string, bool) {
	tmpl, ok := c[lang][key]
	return tmpl, ok
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: key %q: expected string or mapping, got %T", ErrInvalidCatalog, key, v)
		}
	}
	return nil
}
