package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrValidationFailed matches every per-value failure with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError is a single structured per-value failure.
type ValidationError struct {
	// Kind identifies the rule that failed.
	Kind ErrorKind
	// Input is the original, pre-coercion value.
	Input any
	// Context holds the violated bound; nil for kinds without one.
	Context Context
	// Field is the dotted location inside a container, empty for scalars.
	Field string
}

func newError(kind ErrorKind, input any, ctx Context) ValidationError {
	return ValidationError{Kind: kind, Input: input, Context: ctx}
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message()
	}
	return e.Field + ": " + e.Message()
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationError.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Message renders the default English message.
func (e ValidationError) Message() string {
	return Interpolate(e.Kind.Template(), e.TranslationValues(), nil)
}

// TranslationKey returns the catalog key for this failure.
func (e ValidationError) TranslationKey() string {
	return e.Kind.TranslationKey()
}

// TranslationValues returns the placeholder values for message templates.
func (e ValidationError) TranslationValues() map[string]any {
	values := map[string]any{}
	if e.Context != nil {
		for k, v := range e.Context.Values() {
			values[k] = v
		}
	}
	if e.Field != "" {
		values["field"] = e.Field
	}
	return values
}

// ValidationErrors is the aggregated result of container validators.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the default messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message())
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct failing locations in report order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Errors flattens any per-value failure into ValidationErrors.
// It returns nil for nil and for errors that are not validation failures.
func Errors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var one ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}
	}

	return nil
}

func IsValidationError(err error) bool {
	return Errors(err) != nil
}

// nest re-roots child failures under loc.
func nest(loc string, err error) ValidationErrors {
	errs := Errors(err)
	out := make(ValidationErrors, 0, len(errs))
	for _, e := range errs {
		if e.Field == "" {
			e.Field = loc
		} else {
			e.Field = loc + "." + e.Field
		}
		out = append(out, e)
	}
	return out
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces %{name} placeholders with values.
// format renders a single value; nil means fmt.Sprint. Unknown placeholders are kept.
func Interpolate(tmpl string, values map[string]any, format func(any) string) string {
	if format == nil {
		format = func(v any) string { return fmt.Sprint(v) }
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return format(v)
		}
		return match
	})
}
