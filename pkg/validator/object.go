package validator

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

type objectField struct {
	name      string
	validator Validator
	required  bool
}

// ObjectValidator validates a map with string keys field by field.
// Undeclared keys are dropped from the output; failures of all fields are
// aggregated in field-name order.
type ObjectValidator struct {
	fields []objectField
}

var objectVariant = Variant{
	Name: "object",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeObject
	},
	Build: func(s schema.Schema, r *Registry) (Validator, error) {
		return NewObject(s, r)
	},
}

// NewObject builds one child validator per declared field.
// A field is required unless its schema sets "required": false.
// Field names must be non-empty and free of dots.
func NewObject(s schema.Schema, r *Registry) (*ObjectValidator, error) {
	if !s.Has(schema.KeyFields) {
		return nil, &schema.ConfigError{Key: schema.KeyFields, Reason: "is required for object schemas", Err: schema.ErrInvalidConstraint}
	}
	names, fields, err := s.Fields(schema.KeyFields)
	if err != nil {
		return nil, err
	}

	v := &ObjectValidator{fields: make([]objectField, 0, len(names))}
	for _, name := range names {
		// Failure locations join names with dots, so a dotted name would be ambiguous.
		if name == "" || strings.Contains(name, ".") {
			return nil, &schema.ConfigError{Key: schema.KeyFields + "." + name, Reason: "field name must be non-empty and must not contain '.'", Err: schema.ErrInvalidConstraint}
		}
		fs := fields[name]
		required, ok, err := fs.Bool(schema.KeyRequired)
		if err != nil {
			return nil, err
		}
		child, err := r.Build(fs)
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, objectField{name: name, validator: child, required: required || !ok})
	}
	return v, nil
}

func (v *ObjectValidator) Validate(input any) (any, error) {
	values, ok := stringMap(input)
	if !ok {
		return nil, ValidationErrors{coercionError(input, expectedObject)}
	}

	out := make(map[string]any, len(v.fields))
	var errs ValidationErrors
	for _, f := range v.fields {
		raw, present := values[f.name]
		if !present {
			if f.required {
				e := newError(KindFieldRequired, input, nil)
				e.Field = f.name
				errs.Add(e)
			}
			continue
		}
		res, err := f.validator.Validate(raw)
		if err != nil {
			errs = append(errs, nest(f.name, err)...)
			continue
		}
		out[f.name] = res
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return out, nil
}

func (v *ObjectValidator) Duplicate() Validator {
	dup := &ObjectValidator{fields: make([]objectField, len(v.fields))}
	for i, f := range v.fields {
		dup.fields[i] = objectField{name: f.name, validator: f.validator.Duplicate(), required: f.required}
	}
	return dup
}

func stringMap(input any) (map[string]any, bool) {
	switch m := input.(type) {
	case map[string]any:
		return m, true
	case schema.Schema:
		return m, true
	}

	rv := reflect.ValueOf(input)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
