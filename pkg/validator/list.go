package validator

import (
	"reflect"
	"strconv"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// ListValidator accepts slices and arrays. Length bounds are checked first;
// when they hold, every item is validated and all item failures are
// reported together, located by index.
type ListValidator struct {
	items     Validator
	minLength optional[int]
	maxLength optional[int]
}

var listVariant = Variant{
	Name: "list",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeList
	},
	Build: func(s schema.Schema, r *Registry) (Validator, error) {
		return NewList(s, r)
	},
}

// NewList builds a list validator; the item schema, when present, is built with r.
func NewList(s schema.Schema, r *Registry) (*ListValidator, error) {
	var (
		v   ListValidator
		err error
	)
	itemSchema, ok, err := s.Nested(schema.KeyItems)
	if err != nil {
		return nil, err
	}
	if ok {
		if v.items, err = r.Build(itemSchema); err != nil {
			return nil, err
		}
	}
	if v.minLength, err = extract(s.Length, schema.KeyMinLength); err != nil {
		return nil, err
	}
	if v.maxLength, err = extract(s.Length, schema.KeyMaxLength); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *ListValidator) Validate(input any) (any, error) {
	rv := reflect.ValueOf(input)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, ValidationErrors{coercionError(input, expectedList)}
	}

	n := rv.Len()
	if minLen, ok := v.minLength.get(); ok && n < minLen {
		return nil, ValidationErrors{newError(KindListTooShort, input, MinLengthContext{MinLength: minLen})}
	}
	if maxLen, ok := v.maxLength.get(); ok && n > maxLen {
		return nil, ValidationErrors{newError(KindListTooLong, input, MaxLengthContext{MaxLength: maxLen})}
	}

	out := make([]any, n)
	var errs ValidationErrors
	for i := range n {
		item := rv.Index(i).Interface()
		if v.items == nil {
			out[i] = item
			continue
		}
		res, err := v.items.Validate(item)
		if err != nil {
			errs = append(errs, nest(strconv.Itoa(i), err)...)
			continue
		}
		out[i] = res
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return out, nil
}

func (v *ListValidator) Duplicate() Validator {
	dup := *v
	if v.items != nil {
		dup.items = v.items.Duplicate()
	}
	return &dup
}
