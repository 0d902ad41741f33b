package validator

import "github.com/dmitrymomot/schemakit/pkg/schema"

// Validator checks and coerces runtime values against a compiled schema.
//
// Implementations are immutable once built: Validate never modifies the
// receiver and may be called from any number of goroutines at once.
type Validator interface {
	// Validate returns the coerced value, or a ValidationError
	// (ValidationErrors for containers) describing the failed rule.
	Validate(input any) (any, error)

	// Duplicate returns an independent copy with identical behavior.
	// Containers duplicate their children too, so no state is ever shared.
	Duplicate() Validator
}

// Variant is one candidate implementation competing to handle a schema.
type Variant struct {
	// Name identifies the variant in logs and in Registry.Select results.
	Name string

	// Match decides eligibility. It must be cheap and must not modify s.
	Match func(typ string, s schema.Schema) bool

	// Build extracts the constraints it needs from s and returns an owned
	// validator. Containers use r to build their children.
	Build func(s schema.Schema, r *Registry) (Validator, error)
}

// optional is a present-or-absent constraint stored by value, so copying the
// owning struct copies the constraint as well.
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

// extract adapts a schema accessor to an optional.
func extract[T any](get func(string) (T, bool, error), key string) (optional[T], error) {
	v, ok, err := get(key)
	if err != nil || !ok {
		return optional[T]{}, err
	}
	return some(v), nil
}
