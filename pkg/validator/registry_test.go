package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestRegistry_Select(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()

	tests := []struct {
		name   string
		schema schema.Schema
		want   string
	}{
		{"bare int", schema.Schema{"type": "int"}, "int"},
		{"int with unrelated keys", schema.Schema{"type": "int", "title": "n"}, "int"},
		{"int with le", schema.Schema{"type": "int", "le": 10}, "int_constrained"},
		{"int with multiple_of", schema.Schema{"type": "int", "multiple_of": 2}, "int_constrained"},
		{"int with nil gt", schema.Schema{"type": "int", "gt": nil}, "int_constrained"},
		{"bare float", schema.Schema{"type": "float"}, "float"},
		{"float with ge", schema.Schema{"type": "float", "ge": 0.5}, "float_constrained"},
		{"bare str", schema.Schema{"type": "str"}, "str"},
		{"str with max_length", schema.Schema{"type": "str", "max_length": 3}, "str_constrained"},
		{"str with to_lower", schema.Schema{"type": "str", "to_lower": true}, "str_constrained"},
		{"bool", schema.Schema{"type": "bool"}, "bool"},
		{"list", schema.Schema{"type": "list"}, "list"},
		{"object", schema.Schema{"type": "object", "fields": map[string]any{}}, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := r.Select(tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Name)
		})
	}
}

func TestRegistry_SelectEveryNumericKey(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()
	for _, key := range schema.NumericKeys {
		v, err := r.Select(schema.Schema{"type": "int", key: 1})
		require.NoError(t, err)
		assert.Equal(t, "int_constrained", v.Name, key)
	}
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()

	t.Run("missing type", func(t *testing.T) {
		v, err := r.Build(schema.Schema{"le": 1})
		assert.Nil(t, v)
		assert.ErrorIs(t, err, schema.ErrMissingType)
	})

	t.Run("non-string type", func(t *testing.T) {
		_, err := r.Build(schema.Schema{"type": 5})
		assert.ErrorIs(t, err, schema.ErrMissingType)
	})

	t.Run("unknown type names the type", func(t *testing.T) {
		v, err := r.Build(schema.Schema{"type": "decimal"})
		assert.Nil(t, v)
		require.ErrorIs(t, err, schema.ErrUnknownType)
		assert.Contains(t, err.Error(), `"decimal"`)
		assert.True(t, schema.IsConfigError(err))
	})

	t.Run("empty registry", func(t *testing.T) {
		empty := validator.NewRegistry(validator.Variant{
			Name:  "never",
			Match: func(string, schema.Schema) bool { return false },
		})
		_, err := empty.Build(schema.Schema{"type": "int"})
		assert.ErrorIs(t, err, schema.ErrUnknownType)
	})
}

func TestRegistry_OrderMatters(t *testing.T) {
	t.Parallel()

	defaults := validator.DefaultVariants()
	require.Equal(t, "int", defaults[0].Name)
	require.Equal(t, "int_constrained", defaults[1].Name)

	// With the constrained variant first, the unconstrained one can never be chosen.
	reversed := append([]validator.Variant{defaults[1], defaults[0]}, defaults[2:]...)
	r := validator.NewRegistry(reversed...)

	v, err := r.Select(schema.Schema{"type": "int"})
	require.NoError(t, err)
	assert.Equal(t, "int_constrained", v.Name)

	// Behavior is still correct, only the fast path is lost.
	built, err := r.Build(schema.Schema{"type": "int"})
	require.NoError(t, err)
	assert.IsType(t, &validator.ConstrainedIntValidator{}, built)
	out, err := built.Validate(9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), out)
}

func TestRegistry_CustomVariant(t *testing.T) {
	t.Parallel()

	percent := validator.Variant{
		Name: "percent",
		Match: func(typ string, _ schema.Schema) bool {
			return typ == "percent"
		},
		Build: func(_ schema.Schema, r *validator.Registry) (validator.Validator, error) {
			return r.Build(schema.Schema{"type": "int", "ge": 0, "le": 100})
		},
	}
	r := validator.NewRegistry(append(validator.DefaultVariants(), percent)...)

	v, err := r.Build(schema.Schema{"type": "percent"})
	require.NoError(t, err)

	_, err = v.Validate(101)
	verr := requireFailure(t, err)
	assert.Equal(t, validator.KindIntLessThanEqual, verr.Kind)

	names := make([]string, 0)
	for _, variant := range r.Variants() {
		names = append(names, variant.Name)
	}
	assert.Equal(t, []string{
		"int", "int_constrained", "float", "float_constrained",
		"str", "str_constrained", "bool", "list", "object", "percent",
	}, names)
}

func TestMustBuild(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		validator.MustBuild(schema.Schema{"type": "bool"})
	})
	assert.Panics(t, func() {
		validator.MustBuild(schema.Schema{"type": "nope"})
	})
}
