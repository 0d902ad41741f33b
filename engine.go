package schemakit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/messages"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// ErrInvalidJSON is returned by ValidateJSON when the payload is not valid JSON.
var ErrInvalidJSON = errors.New("schemakit: invalid json input")

// Engine compiles schemas, validates values and renders failures.
// It is safe for concurrent use.
type Engine struct {
	compiler *validator.Compiler
	renderer *messages.Renderer
	logger   *slog.Logger
}

type options struct {
	logger   *slog.Logger
	registry *validator.Registry
	catalog  messages.Catalog
}

// Option customizes an Engine.
type Option func(*options)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry sets the validator variants used for compilation.
func WithRegistry(r *validator.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithCatalog layers c over the built-in message catalog.
func WithCatalog(c messages.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// New creates an Engine from cfg.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.New(
			logger.WithLevel(cfg.Level()),
			logger.WithFormat(logger.Format(cfg.LogFormat)),
		)
	}
	log := o.logger.With(logger.Component("schemakit"))

	renderer, err := messages.NewRenderer(
		messages.Default().Merge(o.catalog),
		messages.WithDefaultLanguage(cfg.DefaultLanguage),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create message renderer: %w", err)
	}

	compiler := validator.NewCompiler(
		validator.WithRegistry(o.registry),
		validator.WithLogger(log),
		validator.WithCacheSize(cfg.CacheSize),
	)

	return &Engine{
		compiler: compiler,
		renderer: renderer,
		logger:   log,
	}, nil
}

// Compile returns an independent validator for s.
// A malformed schema yields a *schema.ConfigError.
func (e *Engine) Compile(ctx context.Context, s schema.Schema) (validator.Validator, error) {
	return e.compiler.Compile(ctx, s)
}

// Validate compiles s and applies it to input.
func (e *Engine) Validate(ctx context.Context, s schema.Schema, input any) (any, error) {
	v, err := e.compiler.Compile(ctx, s)
	if err != nil {
		return nil, err
	}

	out, err := v.Validate(input)
	if err != nil {
		if errs := validator.Errors(err); len(errs) > 0 {
			e.logger.DebugContext(ctx, "value rejected",
				logger.Failures(len(errs)),
				logger.Kind(errs[0].Kind),
				logger.Field(errs[0].Field),
			)
		}
		return nil, err
	}
	return out, nil
}

// ValidateJSON decodes data and validates the result against s.
// Numbers are decoded as json.Number so large integers keep their precision.
func (e *Engine) ValidateJSON(ctx context.Context, s schema.Schema, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var input any
	if err := dec.Decode(&input); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}
	return e.Validate(ctx, s, input)
}

// Messages renders every failure in err in the language that best matches
// lang (a tag or an Accept-Language header), grouped by field. Scalar
// failures are reported under "". It returns nil for errors that are not
// validation failures.
func (e *Engine) Messages(err error, lang string) map[string][]string {
	return e.renderer.RenderAll(lang, err)
}

// Reset drops every cached compiled validator.
func (e *Engine) Reset() {
	e.compiler.Reset()
}
