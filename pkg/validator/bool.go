package validator

import "github.com/dmitrymomot/schemakit/pkg/schema"

// BoolValidator coerces input with CoerceBool. It has no constraints.
type BoolValidator struct{}

var boolVariant = Variant{
	Name: "bool",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeBool
	},
	Build: func(schema.Schema, *Registry) (Validator, error) {
		return &BoolValidator{}, nil
	},
}

func (v *BoolValidator) Validate(input any) (any, error) {
	b, err := CoerceBool(input)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (v *BoolValidator) Duplicate() Validator {
	return &BoolValidator{}
}
