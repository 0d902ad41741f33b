package validator

// Bound is the set of numeric types a constraint can be expressed in.
type Bound interface {
	~int64 | ~float64
}

// Context carries the constraint that was violated.
// Each kind has its own concrete type; Values exposes it to presentation layers.
type Context interface {
	Values() map[string]any
}

type MultipleOfContext[T Bound] struct {
	MultipleOf T
}

func (c MultipleOfContext[T]) Values() map[string]any {
	return map[string]any{"multiple_of": c.MultipleOf}
}

type LessThanEqualContext[T Bound] struct {
	Le T
}

func (c LessThanEqualContext[T]) Values() map[string]any {
	return map[string]any{"le": c.Le}
}

type LessThanContext[T Bound] struct {
	Lt T
}

func (c LessThanContext[T]) Values() map[string]any {
	return map[string]any{"lt": c.Lt}
}

type GreaterThanEqualContext[T Bound] struct {
	Ge T
}

func (c GreaterThanEqualContext[T]) Values() map[string]any {
	return map[string]any{"ge": c.Ge}
}

type GreaterThanContext[T Bound] struct {
	Gt T
}

func (c GreaterThanContext[T]) Values() map[string]any {
	return map[string]any{"gt": c.Gt}
}

// CoercionContext names the type the input could not be converted to.
type CoercionContext struct {
	Expected string
}

func (c CoercionContext) Values() map[string]any {
	return map[string]any{"expected_type": c.Expected}
}

// MinLengthContext applies to strings (runes) and lists (items).
type MinLengthContext struct {
	MinLength int
}

func (c MinLengthContext) Values() map[string]any {
	return map[string]any{"min_length": c.MinLength}
}

type MaxLengthContext struct {
	MaxLength int
}

func (c MaxLengthContext) Values() map[string]any {
	return map[string]any{"max_length": c.MaxLength}
}
