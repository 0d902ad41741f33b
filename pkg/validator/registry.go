package validator

import (
	"fmt"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// DefaultVariants returns the built-in variants in priority order.
//
// Each unconstrained variant precedes the constrained variant of the same
// type: the constrained matcher accepts every schema of its type, so
// reversing the pair would make the fast path unreachable.
func DefaultVariants() []Variant {
	return []Variant{
		unconstrainedInt,
		constrainedInt,
		unconstrainedFloat,
		constrainedFloat,
		unconstrainedString,
		constrainedString,
		boolVariant,
		listVariant,
		objectVariant,
	}
}

// Registry selects the first matching variant from an ordered list.
// It is immutable and safe for concurrent use.
type Registry struct {
	variants []Variant
}

// NewRegistry creates a registry trying variants in the given order.
// With no arguments it uses DefaultVariants.
func NewRegistry(variants ...Variant) *Registry {
	if len(variants) == 0 {
		variants = DefaultVariants()
	}
	return &Registry{variants: append([]Variant(nil), variants...)}
}

// Variants returns a copy of the priority list.
func (r *Registry) Variants() []Variant {
	return append([]Variant(nil), r.variants...)
}

// Select returns the first variant whose Match accepts s.
func (r *Registry) Select(s schema.Schema) (Variant, error) {
	typ, err := s.Type()
	if err != nil {
		return Variant{}, err
	}
	for _, v := range r.variants {
		if v.Match(typ, s) {
			return v, nil
		}
	}
	return Variant{}, &schema.ConfigError{
		Key:    schema.KeyType,
		Reason: fmt.Sprintf("no validator for type %q", typ),
		Err:    schema.ErrUnknownType,
	}
}

// Build selects a variant for s and builds it.
// On error no validator is returned.
func (r *Registry) Build(s schema.Schema) (Validator, error) {
	v, err := r.Select(s)
	if err != nil {
		return nil, err
	}
	val, err := v.Build(s, r)
	if err != nil {
		return nil, err
	}
	return val, nil
}

var defaultRegistry = NewRegistry()

// Build compiles s with the default registry.
func Build(s schema.Schema) (Validator, error) {
	return defaultRegistry.Build(s)
}

// MustBuild is like Build but panics on a malformed schema.
func MustBuild(s schema.Schema) Validator {
	v, err := Build(s)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}
