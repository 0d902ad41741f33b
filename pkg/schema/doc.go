// Package schema describes the declarative input of the validation engine and
// the helpers used to read typed constraint values out of it.
//
// A Schema is a plain map from string keys to heterogeneous values, usually
// produced by decoding JSON or YAML or written inline in Go code:
//
//	s := schema.Schema{
//	    schema.KeyType: schema.TypeInt,
//	    schema.KeyGe:   0,
//	    schema.KeyLe:   100,
//	}
//
// Validators never keep a reference to the Schema they were built from. They
// extract the fields they need with the typed accessors (Int, Float, Bool,
// String, Nested, Fields) and copy the values out.
//
// # Error Handling
//
// Accessors tolerate absent keys: a missing key or a key set to nil reports
// "not present" without an error. A key that is present but has the wrong
// shape produces a *ConfigError wrapping ErrInvalidConstraint. ConfigError is
// a build-time error and is never returned while validating values.
//
//	if errors.Is(err, schema.ErrInvalidConstraint) {
//	    // the schema itself is malformed
//	}
package schema
