// Package validator compiles schemas into immutable validators and applies
// them to runtime values, returning either the coerced value or a structured
// failure.
//
// # Architecture
//
// A Variant is one candidate implementation for a schema. It has a cheap
// Match predicate and a Build function that extracts the constraints it needs
// and returns an owned Validator. A Registry holds variants in a fixed
// priority order and builds the first one that matches:
//
//	int               no numeric keys        IntValidator
//	int_constrained   any int schema         ConstrainedIntValidator
//	float             no numeric keys        FloatValidator
//	float_constrained any float schema       ConstrainedFloatValidator
//	str               no string keys         StringValidator
//	str_constrained   any str schema         ConstrainedStringValidator
//	bool                                     BoolValidator
//	list                                     ListValidator
//	object                                   ObjectValidator
//
// The order is part of the contract: a constrained variant accepts every
// schema of its type, so it must come after the unconstrained fast path.
//
// Validators are immutable. Validate only reads the receiver and is safe for
// concurrent use. Duplicate returns an independent copy (containers duplicate
// their children) for embedding the same logic at several places in a tree.
//
// # Usage
//
//	v, err := validator.Build(schema.Schema{"type": "int", "ge": 0, "le": 10})
//	if err != nil {
//	    // malformed schema: *schema.ConfigError
//	}
//	out, err := v.Validate("7") // out == int64(7)
//
// A Compiler adds logging and an LRU cache keyed by schema fingerprint:
//
//	c := validator.NewCompiler(validator.WithLogger(log))
//	v, err := c.Compile(ctx, s)
//
// # Constraint checking
//
// Numeric validators coerce first, then check multiple_of, le, lt, ge, gt in
// that order and stop at the first violation. The same invalid input against
// the same schema therefore always reports the same single failure.
//
// # Error Handling
//
// Scalar validators return a ValidationError carrying the Kind, the original
// Input and a typed Context with the violated bound. Containers return
// ValidationErrors with one entry per failing location. Both match
// ErrValidationFailed with errors.Is; use Errors to flatten either form.
//
//	if verrs := validator.Errors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.Kind, e.Context.Values())
//	    }
//	}
//
// Build-time problems are reported as *schema.ConfigError and never mixed
// with per-value failures.
package validator
