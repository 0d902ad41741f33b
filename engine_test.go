package schemakit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit"
	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/messages"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func newEngine(t *testing.T, opts ...schemakit.Option) *schemakit.Engine {
	t.Helper()
	opts = append([]schemakit.Option{schemakit.WithLogger(logger.Discard())}, opts...)
	e, err := schemakit.New(config.Default(), opts...)
	require.NoError(t, err)
	return e
}

var signup = schema.Schema{
	"type": "object",
	"fields": map[string]any{
		"age":   map[string]any{"type": "int", "ge": 18, "le": 130},
		"email": map[string]any{"type": "str", "strip_whitespace": true, "to_lower": true, "min_length": 3},
		"score": map[string]any{"type": "float", "ge": 0, "required": false},
	},
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.CacheSize = -1
		e, err := schemakit.New(cfg)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("rejects invalid catalog", func(t *testing.T) {
		e, err := schemakit.New(config.Default(),
			schemakit.WithLogger(logger.Discard()),
			schemakit.WithCatalog(messages.Catalog{"not a tag!": {"validation.unknown": "x"}}),
		)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, messages.ErrInvalidCatalog)
	})

	t.Run("builds its own logger", func(t *testing.T) {
		e, err := schemakit.New(config.Default())
		require.NoError(t, err)
		assert.NotNil(t, e)
	})
}

func TestEngine_Validate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEngine(t)

	t.Run("returns coerced output", func(t *testing.T) {
		out, err := e.Validate(ctx, signup, map[string]any{"age": "21", "email": "  Ann@Example.COM "})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"age": int64(21), "email": "ann@example.com"}, out)
	})

	t.Run("returns structured failures", func(t *testing.T) {
		_, err := e.Validate(ctx, signup, map[string]any{"age": 12, "score": -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.False(t, schema.IsConfigError(err))

		errs := validator.Errors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"age", "email", "score"}, errs.Fields())
		assert.Equal(t, validator.KindIntGreaterThanEqual, errs[0].Kind)
		assert.Equal(t, validator.KindFieldRequired, errs[1].Kind)
		assert.Equal(t, validator.KindFloatGreaterThanEqual, errs[2].Kind)
	})

	t.Run("scalar schema", func(t *testing.T) {
		_, err := e.Validate(ctx, schema.Schema{"type": "int", "multiple_of": 5}, 7)
		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, validator.MultipleOfContext[int64]{MultipleOf: 5}, verr.Context)
	})

	t.Run("malformed schema", func(t *testing.T) {
		_, err := e.Validate(ctx, schema.Schema{"type": "int", "le": "ten"}, 1)
		assert.ErrorIs(t, err, schema.ErrInvalidConstraint)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestEngine_ValidateJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEngine(t)

	out, err := e.ValidateJSON(ctx, signup, []byte(`{"age": 9007199254740993, "email": "x@y.z", "score": 2.5}`))
	require.Error(t, err, "age above le must fail")
	assert.Nil(t, out)

	out, err = e.ValidateJSON(ctx, signup, []byte(`{"age": 40, "email": "x@y.z", "score": 2.5}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"age": int64(40), "email": "x@y.z", "score": 2.5}, out)

	big, err := e.ValidateJSON(ctx, schema.Schema{"type": "int"}, []byte(`9007199254740993`))
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), big)

	t.Run("integral decimals coerce to int", func(t *testing.T) {
		for payload, want := range map[string]int64{`10.0`: 10, `1e3`: 1000, `-4.0`: -4} {
			out, err := e.ValidateJSON(ctx, schema.Schema{"type": "int"}, []byte(payload))
			require.NoError(t, err, payload)
			assert.Equal(t, want, out, payload)
		}

		_, err := e.ValidateJSON(ctx, schema.Schema{"type": "int"}, []byte(`10.5`))
		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, validator.KindTypeCoercionFailed, verr.Kind)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		for _, payload := range []string{`{"age":`, `{} {}`, `5 }`, `5 ]`, `"a" "b"`, ``} {
			_, err := e.ValidateJSON(ctx, schema.Schema{"type": "int"}, []byte(payload))
			assert.ErrorIs(t, err, schemakit.ErrInvalidJSON, payload)
		}
	})

	t.Run("allows trailing whitespace", func(t *testing.T) {
		out, err := e.ValidateJSON(ctx, schema.Schema{"type": "int"}, []byte("7 \n\t"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})
}

func TestEngine_Compile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEngine(t)

	a, err := e.Compile(ctx, schema.Schema{"type": "int", "lt": 3})
	require.NoError(t, err)
	b, err := e.Compile(ctx, schema.Schema{"type": "int", "lt": 3})
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	e.Reset()
	_, err = e.Compile(ctx, schema.Schema{"type": "unknown"})
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestEngine_Messages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("localized by field", func(t *testing.T) {
		e := newEngine(t)
		_, err := e.Validate(ctx, signup, map[string]any{"age": 200, "email": "ab"})
		require.Error(t, err)

		assert.Equal(t, map[string][]string{
			"age":   {"Input should be less than or equal to 130"},
			"email": {"String should have at least 3 characters"},
		}, e.Messages(err, "en-US"))

		de := e.Messages(err, "de-DE,de;q=0.9")
		assert.Equal(t, []string{"Eingabe muss kleiner oder gleich 130 sein"}, de["age"])
	})

	t.Run("custom catalog overrides built-in text", func(t *testing.T) {
		e := newEngine(t, schemakit.WithCatalog(messages.Catalog{
			"en": {"validation.int_multiple": "Use steps of %{multiple_of}"},
		}))
		_, err := e.Validate(ctx, schema.Schema{"type": "int", "multiple_of": 1000}, 1)
		require.Error(t, err)
		assert.Equal(t, map[string][]string{"": {"Use steps of 1,000"}}, e.Messages(err, "en"))
	})

	t.Run("non validation errors", func(t *testing.T) {
		e := newEngine(t)
		assert.Nil(t, e.Messages(nil, "en"))
		_, err := e.Validate(ctx, schema.Schema{}, 1)
		assert.Nil(t, e.Messages(err, "en"))
	})
}

func TestEngine_LogsRejections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	e := newEngine(t, schemakit.WithLogger(log))

	_, err := e.Validate(context.Background(), signup, map[string]any{"age": 1, "email": "abc"})
	require.Error(t, err)

	var rejected map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "value rejected" {
			rejected = rec
		}
	}
	require.NotNil(t, rejected)
	assert.Equal(t, "schemakit", rejected["component"])
	assert.Equal(t, "int_greater_than_equal", rejected["kind"])
	assert.Equal(t, "age", rejected["field"])
	assert.Equal(t, float64(1), rejected["failures"])
}
