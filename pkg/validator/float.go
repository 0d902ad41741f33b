package validator

import (
	"math"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// FloatValidator accepts any float-coercible value.
type FloatValidator struct{}

var unconstrainedFloat = Variant{
	Name: "float",
	Match: func(typ string, s schema.Schema) bool {
		return typ == schema.TypeFloat && !s.HasAny(schema.NumericKeys...)
	},
	Build: func(schema.Schema, *Registry) (Validator, error) {
		return &FloatValidator{}, nil
	},
}

func (v *FloatValidator) Validate(input any) (any, error) {
	f, err := CoerceFloat(input)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (v *FloatValidator) Duplicate() Validator {
	return &FloatValidator{}
}

// ConstrainedFloatValidator mirrors ConstrainedIntValidator for float64.
type ConstrainedFloatValidator struct {
	multipleOf optional[float64]
	le         optional[float64]
	lt         optional[float64]
	ge         optional[float64]
	gt         optional[float64]
}

var constrainedFloat = Variant{
	Name: "float_constrained",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeFloat
	},
	Build: func(s schema.Schema, _ *Registry) (Validator, error) {
		return NewConstrainedFloat(s)
	},
}

func NewConstrainedFloat(s schema.Schema) (*ConstrainedFloatValidator, error) {
	var (
		v   ConstrainedFloatValidator
		err error
	)
	if v.multipleOf, err = extract(s.Float, schema.KeyMultipleOf); err != nil {
		return nil, err
	}
	if m, ok := v.multipleOf.get(); ok && (m == 0 || math.IsInf(m, 0)) {
		return nil, &schema.ConfigError{Key: schema.KeyMultipleOf, Reason: "must be finite and non-zero", Err: schema.ErrInvalidConstraint}
	}
	if v.le, err = extract(s.Float, schema.KeyLe); err != nil {
		return nil, err
	}
	if v.lt, err = extract(s.Float, schema.KeyLt); err != nil {
		return nil, err
	}
	if v.ge, err = extract(s.Float, schema.KeyGe); err != nil {
		return nil, err
	}
	if v.gt, err = extract(s.Float, schema.KeyGt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *ConstrainedFloatValidator) Validate(input any) (any, error) {
	f, err := CoerceFloat(input)
	if err != nil {
		return nil, err
	}
	if m, ok := v.multipleOf.get(); ok && !isMultiple(f, m) {
		return nil, newError(KindFloatMultiple, input, MultipleOfContext[float64]{MultipleOf: m})
	}
	// NaN compares false against everything, so each check is written to reject it.
	if le, ok := v.le.get(); ok && !(f <= le) {
		return nil, newError(KindFloatLessThanEqual, input, LessThanEqualContext[float64]{Le: le})
	}
	if lt, ok := v.lt.get(); ok && !(f < lt) {
		return nil, newError(KindFloatLessThan, input, LessThanContext[float64]{Lt: lt})
	}
	if ge, ok := v.ge.get(); ok && !(f >= ge) {
		return nil, newError(KindFloatGreaterThanEqual, input, GreaterThanEqualContext[float64]{Ge: ge})
	}
	if gt, ok := v.gt.get(); ok && !(f > gt) {
		return nil, newError(KindFloatGreaterThan, input, GreaterThanContext[float64]{Gt: gt})
	}
	return f, nil
}

func (v *ConstrainedFloatValidator) Duplicate() Validator {
	dup := *v
	return &dup
}

// isMultiple tolerates the rounding error of binary fractions (0.3 / 0.1).
func isMultiple(f, m float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	rem := math.Abs(math.Mod(f, m))
	threshold := math.Abs(f) / 1e9
	return rem <= threshold || math.Abs(rem-math.Abs(m)) <= threshold
}
