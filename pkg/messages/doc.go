// Package messages renders structured validation failures as localized,
// human-readable text.
//
// Failures produced by package validator carry a kind, the original input
// and the violated bound. This package maps the kind's translation key
// (for example "validation.int_less_than_equal") to a template from a
// Catalog and fills %{name} placeholders with the bound values, formatting
// numbers with the conventions of the selected language.
//
// # Catalogs
//
// Catalogs are YAML or JSON documents whose top-level keys are languages:
//
//	en:
//	  validation:
//	    int_less_than_equal: "Input should be less than or equal to %{le}"
//
// English and German catalogs are embedded and returned by Default. Custom
// catalogs are loaded with Parse or LoadFS and layered with Merge.
//
// # Usage
//
//	r, err := messages.NewRenderer(messages.Default(), messages.WithDefaultLanguage("en"))
//	...
//	_, err = v.Validate(input)
//	for field, msgs := range r.RenderAll("de-AT,de;q=0.9", err) {
//	    ...
//	}
//
// Language selection uses golang.org/x/text/language matching, so regional
// tags and Accept-Language values resolve to the closest catalog language.
// Keys missing from a language fall back to the default language and then
// to the built-in English template of the kind.
package messages
