package validator

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

var stringKeys = []string{
	schema.KeyMinLength,
	schema.KeyMaxLength,
	schema.KeyStripWhitespace,
	schema.KeyToLower,
	schema.KeyToUpper,
}

// StringValidator accepts strings and UTF-8 byte slices unchanged.
type StringValidator struct{}

var unconstrainedString = Variant{
	Name: "str",
	Match: func(typ string, s schema.Schema) bool {
		return typ == schema.TypeString && !s.HasAny(stringKeys...)
	},
	Build: func(schema.Schema, *Registry) (Validator, error) {
		return &StringValidator{}, nil
	},
}

func (v *StringValidator) Validate(input any) (any, error) {
	s, err := CoerceString(input)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (v *StringValidator) Duplicate() Validator {
	return &StringValidator{}
}

// ConstrainedStringValidator applies transforms first (strip, then case
// folding) and checks lengths, counted in runes, on the transformed value.
type ConstrainedStringValidator struct {
	minLength optional[int]
	maxLength optional[int]
	strip     bool
	lower     bool
	upper     bool
}

var constrainedString = Variant{
	Name: "str_constrained",
	Match: func(typ string, _ schema.Schema) bool {
		return typ == schema.TypeString
	},
	Build: func(s schema.Schema, _ *Registry) (Validator, error) {
		return NewConstrainedString(s)
	},
}

func NewConstrainedString(s schema.Schema) (*ConstrainedStringValidator, error) {
	var (
		v   ConstrainedStringValidator
		err error
	)
	if v.minLength, err = extract(s.Length, schema.KeyMinLength); err != nil {
		return nil, err
	}
	if v.maxLength, err = extract(s.Length, schema.KeyMaxLength); err != nil {
		return nil, err
	}
	if v.strip, _, err = s.Bool(schema.KeyStripWhitespace); err != nil {
		return nil, err
	}
	if v.lower, _, err = s.Bool(schema.KeyToLower); err != nil {
		return nil, err
	}
	if v.upper, _, err = s.Bool(schema.KeyToUpper); err != nil {
		return nil, err
	}
	if v.lower && v.upper {
		return nil, &schema.ConfigError{Key: schema.KeyToUpper, Reason: "cannot be combined with to_lower", Err: schema.ErrInvalidConstraint}
	}
	return &v, nil
}

func (v *ConstrainedStringValidator) Validate(input any) (any, error) {
	s, err := CoerceString(input)
	if err != nil {
		return nil, err
	}

	if v.strip {
		s = strings.TrimSpace(s)
	}
	// Casers keep state between calls, so a fresh one is used per value.
	switch {
	case v.lower:
		s = cases.Lower(language.Und).String(s)
	case v.upper:
		s = cases.Upper(language.Und).String(s)
	}

	n := utf8.RuneCountInString(s)
	if minLen, ok := v.minLength.get(); ok && n < minLen {
		return nil, newError(KindStringTooShort, input, MinLengthContext{MinLength: minLen})
	}
	if maxLen, ok := v.maxLength.get(); ok && n > maxLen {
		return nil, newError(KindStringTooLong, input, MaxLengthContext{MaxLength: maxLen})
	}
	return s, nil
}

func (v *ConstrainedStringValidator) Duplicate() Validator {
	dup := *v
	return &dup
}
