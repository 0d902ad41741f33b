// Package schemakit validates and coerces runtime values against declarative
// schemas.
//
// An Engine ties together the pieces found under pkg/: configuration from the
// environment (pkg/config), structured logging (pkg/logger), schema
// compilation with a cache of compiled validators (pkg/validator) and
// localized error messages (pkg/messages).
//
// Basic Usage:
//
//	engine, err := schemakit.New(config.MustLoad())
//	if err != nil {
//		return err
//	}
//
//	s := schema.Schema{
//		"type": "object",
//		"fields": map[string]any{
//			"age":  map[string]any{"type": "int", "ge": 18},
//			"name": map[string]any{"type": "str", "min_length": 1},
//		},
//	}
//
//	out, err := engine.Validate(ctx, s, input)
//	if err != nil {
//		if schema.IsConfigError(err) {
//			// the schema itself is malformed
//		}
//		msgs := engine.Messages(err, "de")
//		// msgs["age"] == []string{"Eingabe muss größer oder gleich 18 sein"}
//	}
//
// Failures are structured: use validator.Errors to inspect the kind, the
// original input and the violated constraint of each one.
package schemakit
