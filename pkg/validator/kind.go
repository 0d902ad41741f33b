package validator

// ErrorKind identifies which rule rejected a value.
// Kinds are never shared between semantically different rules.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTypeCoercionFailed

	KindIntMultiple
	KindIntLessThanEqual
	KindIntLessThan
	KindIntGreaterThanEqual
	KindIntGreaterThan

	KindFloatMultiple
	KindFloatLessThanEqual
	KindFloatLessThan
	KindFloatGreaterThanEqual
	KindFloatGreaterThan

	KindStringTooShort
	KindStringTooLong

	KindListTooShort
	KindListTooLong

	KindFieldRequired
)

type kindInfo struct {
	tag      string
	template string
}

// Templates use %{name} placeholders filled from Context.Values.
var kinds = map[ErrorKind]kindInfo{
	KindUnknown:            {"unknown", "Input is invalid"},
	KindTypeCoercionFailed: {"type_coercion_failed", "Input should be a valid %{expected_type}"},

	KindIntMultiple:         {"int_multiple", "Input should be a multiple of %{multiple_of}"},
	KindIntLessThanEqual:    {"int_less_than_equal", "Input should be less than or equal to %{le}"},
	KindIntLessThan:         {"int_less_than", "Input should be less than %{lt}"},
	KindIntGreaterThanEqual: {"int_greater_than_equal", "Input should be greater than or equal to %{ge}"},
	KindIntGreaterThan:      {"int_greater_than", "Input should be greater than %{gt}"},

	KindFloatMultiple:         {"float_multiple", "Input should be a multiple of %{multiple_of}"},
	KindFloatLessThanEqual:    {"float_less_than_equal", "Input should be less than or equal to %{le}"},
	KindFloatLessThan:         {"float_less_than", "Input should be less than %{lt}"},
	KindFloatGreaterThanEqual: {"float_greater_than_equal", "Input should be greater than or equal to %{ge}"},
	KindFloatGreaterThan:      {"float_greater_than", "Input should be greater than %{gt}"},

	KindStringTooShort: {"string_too_short", "String should have at least %{min_length} characters"},
	KindStringTooLong:  {"string_too_long", "String should have at most %{max_length} characters"},

	KindListTooShort: {"list_too_short", "List should have at least %{min_length} items"},
	KindListTooLong:  {"list_too_long", "List should have at most %{max_length} items"},

	KindFieldRequired: {"field_required", "Field required"},
}

// String returns the stable snake_case tag of the kind.
func (k ErrorKind) String() string {
	if info, ok := kinds[k]; ok {
		return info.tag
	}
	return kinds[KindUnknown].tag
}

// TranslationKey returns the message catalog key for the kind.
func (k ErrorKind) TranslationKey() string {
	return "validation." + k.String()
}

// Template returns the default English message template.
func (k ErrorKind) Template() string {
	if info, ok := kinds[k]; ok {
		return info.template
	}
	return kinds[KindUnknown].template
}

// Kinds returns every known kind except KindUnknown, in declaration order.
func Kinds() []ErrorKind {
	out := make([]ErrorKind, 0, len(kinds)-1)
	for k := KindTypeCoercionFailed; k <= KindFieldRequired; k++ {
		out = append(out, k)
	}
	return out
}
