package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestStringValidator(t *testing.T) {
	t.Parallel()

	t.Run("unconstrained keeps value unchanged", func(t *testing.T) {
		v := mustBuild(t, schema.Schema{"type": "str"})
		assert.IsType(t, &validator.StringValidator{}, v)

		out, err := v.Validate("  Mixed Case  ")
		require.NoError(t, err)
		assert.Equal(t, "  Mixed Case  ", out)

		_, err = v.Validate(12)
		assertCoercionFailed(t, err, 12, "str")
	})

	t.Run("transforms", func(t *testing.T) {
		tests := []struct {
			name   string
			schema schema.Schema
			input  string
			want   string
		}{
			{"strip", schema.Schema{"strip_whitespace": true}, " \tHi \n", "Hi"},
			{"lower", schema.Schema{"to_lower": true}, "ÄBC", "äbc"},
			{"upper", schema.Schema{"to_upper": true}, "straße", "STRASSE"},
			{"strip then upper", schema.Schema{"strip_whitespace": true, "to_upper": true}, "  go ", "GO"},
			{"disabled flags", schema.Schema{"strip_whitespace": false, "to_lower": false}, " Keep ", " Keep "},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tt.schema["type"] = "str"
				out, err := mustBuild(t, tt.schema).Validate(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, out)
			})
		}
	})

	t.Run("length counts runes after transforms", func(t *testing.T) {
		v := mustBuild(t, schema.Schema{"type": "str", "min_length": 2, "max_length": 4, "strip_whitespace": true})

		out, err := v.Validate("  äöü ")
		require.NoError(t, err)
		assert.Equal(t, "äöü", out)

		_, err = v.Validate("   a   ")
		verr := requireFailure(t, err)
		assert.Equal(t, validator.KindStringTooShort, verr.Kind)
		assert.Equal(t, validator.MinLengthContext{MinLength: 2}, verr.Context)
		assert.Equal(t, "   a   ", verr.Input)

		_, err = v.Validate("hello")
		verr = requireFailure(t, err)
		assert.Equal(t, validator.KindStringTooLong, verr.Kind)
		assert.Equal(t, validator.MaxLengthContext{MaxLength: 4}, verr.Context)
	})

	t.Run("build errors", func(t *testing.T) {
		for name, s := range map[string]schema.Schema{
			"negative length":   {"type": "str", "min_length": -1},
			"string length":     {"type": "str", "max_length": "3"},
			"non-bool flag":     {"type": "str", "to_lower": "yes"},
			"conflicting cases": {"type": "str", "to_lower": true, "to_upper": true},
		} {
			v, err := validator.Build(s)
			assert.Nil(t, v, name)
			assert.ErrorIs(t, err, schema.ErrInvalidConstraint, name)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		orig := mustBuild(t, schema.Schema{"type": "str", "max_length": 3, "to_lower": true})
		dup := orig.Duplicate()
		assert.NotSame(t, orig, dup)
		for _, in := range []any{"ABC", "ABCD", 5} {
			wantOut, wantErr := orig.Validate(in)
			gotOut, gotErr := dup.Validate(in)
			assert.Equal(t, wantOut, gotOut)
			assert.Equal(t, wantErr, gotErr)
		}
	})
}
