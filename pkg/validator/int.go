package validator

import "github.com/dmitrymomot/schemakit/pkg/schema"

// IntValidator accepts any integer-coercible value. It is selected only when
// the schema declares no numeric constraint at all.
type IntValidator struct{}

var unconstrainedInt = Variant{
	Name: "int",
	Match: func(typ string, s schema.Schema) bool {
		return typ == schema.TypeInt && !s.HasAny(schema.NumericKeys...)
	},
	Build: func(schema.Schema, *Registry) (Validator, error) {
		return &IntValidator{}, nil
	},
}

func (v *IntValidator) Validate(input any) (any, error) {
	n, err := CoerceInt(input)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (v *IntValidator) Duplicate() Validator {
	return &IntValidator{}
}

// ConstrainedIntValidator enforces multiple_of, le, lt, ge and gt.
// Checks run in that order and stop at the first violation.
type ConstrainedIntValidator struct {
	multipleOf optional[int64]
	le         optional[int64]
	lt         optional[int64]
	ge         optional[int64]
	gt         optional[int64]
}

// constrainedInt matches every int schema, so it must be tried after unconstrainedInt.
var constrainedInt = Variant{
	Name: "int_constrained",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeInt
	},
	Build: func(s schema.Schema, _ *Registry) (Validator, error) {
		return NewConstrainedInt(s)
	},
}

// NewConstrainedInt builds the validator from the numeric keys of s.
func NewConstrainedInt(s schema.Schema) (*ConstrainedIntValidator, error) {
	var (
		v   ConstrainedIntValidator
		err error
	)
	if v.multipleOf, err = extract(s.Int, schema.KeyMultipleOf); err != nil {
		return nil, err
	}
	if m, ok := v.multipleOf.get(); ok && m == 0 {
		return nil, &schema.ConfigError{Key: schema.KeyMultipleOf, Reason: "must not be zero", Err: schema.ErrInvalidConstraint}
	}
	if v.le, err = extract(s.Int, schema.KeyLe); err != nil {
		return nil, err
	}
	if v.lt, err = extract(s.Int, schema.KeyLt); err != nil {
		return nil, err
	}
	if v.ge, err = extract(s.Int, schema.KeyGe); err != nil {
		return nil, err
	}
	if v.gt, err = extract(s.Int, schema.KeyGt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *ConstrainedIntValidator) Validate(input any) (any, error) {
	n, err := CoerceInt(input)
	if err != nil {
		return nil, err
	}
	if m, ok := v.multipleOf.get(); ok && n%m != 0 {
		return nil, newError(KindIntMultiple, input, MultipleOfContext[int64]{MultipleOf: m})
	}
	if le, ok := v.le.get(); ok && n > le {
		return nil, newError(KindIntLessThanEqual, input, LessThanEqualContext[int64]{Le: le})
	}
	if lt, ok := v.lt.get(); ok && n >= lt {
		return nil, newError(KindIntLessThan, input, LessThanContext[int64]{Lt: lt})
	}
	if ge, ok := v.ge.get(); ok && n < ge {
		return nil, newError(KindIntGreaterThanEqual, input, GreaterThanEqualContext[int64]{Ge: ge})
	}
	if gt, ok := v.gt.get(); ok && n <= gt {
		return nil, newError(KindIntGreaterThan, input, GreaterThanContext[int64]{Gt: gt})
	}
	return n, nil
}

func (v *ConstrainedIntValidator) Duplicate() Validator {
	dup := *v
	return &dup
}
