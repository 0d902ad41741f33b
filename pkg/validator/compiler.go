package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// DefaultCacheSize is the number of compiled validators a Compiler keeps.
const DefaultCacheSize = 128

// Compiler turns schemas into validators and remembers the results.
// Every call returns an independent validator, so callers may embed or
// keep the result without coordinating with other callers.
type Compiler struct {
	registry *Registry
	cache    *validatorCache
	logger   *slog.Logger
}

type CompilerOption func(*Compiler)

// WithRegistry replaces the default variant list.
func WithRegistry(r *Registry) CompilerOption {
	return func(c *Compiler) {
		if r != nil {
			c.registry = r
		}
	}
}

func WithLogger(l *slog.Logger) CompilerOption {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCacheSize bounds the compiled validator cache. Zero or less disables it.
func WithCacheSize(n int) CompilerOption {
	return func(c *Compiler) {
		if n <= 0 {
			c.cache = nil
			return
		}
		c.cache = newValidatorCache(n)
	}
}

func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		registry: defaultRegistry,
		cache:    newValidatorCache(DefaultCacheSize),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns a validator for s, reusing a previous compilation of an
// identical schema when possible.
func (c *Compiler) Compile(ctx context.Context, s schema.Schema) (Validator, error) {
	key, err := schema.Fingerprint(s)
	if err != nil {
		c.logger.DebugContext(ctx, "schema is not cacheable", logger.Error(err))
		key = ""
	}

	if c.cache != nil && key != "" {
		if v, ok := c.cache.get(key); ok {
			c.logger.DebugContext(ctx, "validator reused", logger.Fingerprint(key), logger.CacheHit(true))
			return v, nil
		}
	}

	variant, err := c.registry.Select(s)
	if err != nil {
		c.logger.WarnContext(ctx, "schema rejected", logger.Error(err))
		return nil, err
	}
	v, err := variant.Build(s, c.registry)
	if err != nil {
		c.logger.WarnContext(ctx, "validator build failed", logger.Variant(variant.Name), logger.Error(err))
		return nil, err
	}

	typ, _ := s.Type()
	c.logger.DebugContext(ctx, "validator compiled",
		logger.SchemaType(typ),
		logger.Variant(variant.Name),
		logger.CacheHit(false),
	)

	if c.cache == nil || key == "" {
		return v, nil
	}
	c.cache.put(key, v)
	return v.Duplicate(), nil
}

// MustCompile is like Compile but panics on a malformed schema.
func (c *Compiler) MustCompile(ctx context.Context, s schema.Schema) Validator {
	v, err := c.Compile(ctx, s)
	if err != nil {
		panic("validator: " + err.Error())
	}
	return v
}

// Cached reports how many compiled validators are currently kept.
func (c *Compiler) Cached() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.len()
}

// Reset drops every cached validator.
func (c *Compiler) Reset() {
	if c.cache != nil {
		c.cache.clear()
	}
}
