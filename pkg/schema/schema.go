package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Schema is a declarative description of an expected value.
// It must not be mutated once a validator has been built from it.
type Schema map[string]any

// Declared types understood by the built-in validators.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "str"
	TypeBool   = "bool"
	TypeList   = "list"
	TypeObject = "object"
)

// Recognized keys.
const (
	KeyType = "type"

	// Numeric bounds shared by int and float.
	KeyMultipleOf = "multiple_of"
	KeyLe         = "le"
	KeyLt         = "lt"
	KeyGe         = "ge"
	KeyGt         = "gt"

	// Length bounds shared by str and list.
	KeyMinLength = "min_length"
	KeyMaxLength = "max_length"

	// String transforms.
	KeyStripWhitespace = "strip_whitespace"
	KeyToLower         = "to_lower"
	KeyToUpper         = "to_upper"

	// Containers.
	KeyItems    = "items"
	KeyFields   = "fields"
	KeyRequired = "required"
)

// NumericKeys lists the numeric constraint keys in checking order.
var NumericKeys = []string{KeyMultipleOf, KeyLe, KeyLt, KeyGe, KeyGt}

// Type returns the declared type.
func (s Schema) Type() (string, error) {
	raw, ok := s[KeyType]
	if !ok || raw == nil {
		return "", &ConfigError{Key: KeyType, Reason: "is required", Err: ErrMissingType}
	}
	typ, ok := raw.(string)
	if !ok || typ == "" {
		return "", &ConfigError{Key: KeyType, Reason: fmt.Sprintf("must be a non-empty string, got %T", raw), Err: ErrMissingType}
	}
	return typ, nil
}

// Has reports whether key exists in the schema, regardless of its value.
func (s Schema) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// HasAny reports whether at least one of keys exists in the schema.
func (s Schema) HasAny(keys ...string) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

func (s Schema) lookup(key string) (any, bool) {
	v, ok := s[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Int extracts a signed integer constraint.
// Integral floats are accepted because JSON decoders produce float64 for every number.
func (s Schema) Int(key string) (int64, bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int8:
		return int64(v), true, nil
	case int16:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case uint:
		return uintToInt64(key, uint64(v))
	case uint8:
		return int64(v), true, nil
	case uint16:
		return int64(v), true, nil
	case uint32:
		return int64(v), true, nil
	case uint64:
		return uintToInt64(key, v)
	case float32:
		return floatToInt64(key, float64(v))
	case float64:
		return floatToInt64(key, v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, invalid(key, "must be an integer, got %q", v.String())
		}
		return n, true, nil
	default:
		return 0, false, invalid(key, "must be an integer, got %T", raw)
	}
}

func uintToInt64(key string, v uint64) (int64, bool, error) {
	if v > math.MaxInt64 {
		return 0, false, invalid(key, "overflows int64")
	}
	return int64(v), true, nil
}

func floatToInt64(key string, f float64) (int64, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, invalid(key, "must be an integer, got %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false, invalid(key, "overflows int64")
	}
	return int64(f), true, nil
}

// Float extracts a numeric constraint as float64.
func (s Schema) Float(key string) (float64, bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return 0, false, nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false, invalid(key, "must be a number, got %q", v.String())
		}
		f = n
	default:
		n, ok, err := s.Int(key)
		if err != nil || !ok {
			return 0, false, invalid(key, "must be a number, got %T", raw)
		}
		f = float64(n)
	}

	if math.IsNaN(f) {
		return 0, false, invalid(key, "must not be NaN")
	}
	return f, true, nil
}

// Bool extracts a boolean flag.
func (s Schema) Bool(key string) (bool, bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, invalid(key, "must be a boolean, got %T", raw)
	}
	return b, true, nil
}

// String extracts a string value.
func (s Schema) String(key string) (string, bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return "", false, nil
	}
	str, ok := raw.(string)
	if !ok {
		return "", false, invalid(key, "must be a string, got %T", raw)
	}
	return str, true, nil
}

// Length extracts a non-negative length bound.
func (s Schema) Length(key string) (int, bool, error) {
	n, ok, err := s.Int(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, false, invalid(key, "must be between 0 and %d, got %d", math.MaxInt32, n)
	}
	return int(n), true, nil
}

// Nested extracts a sub-schema, for example the item schema of a list.
func (s Schema) Nested(key string) (Schema, bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return nil, false, nil
	}
	sub, ok := asSchema(raw)
	if !ok {
		return nil, false, invalid(key, "must be a schema mapping, got %T", raw)
	}
	return sub, true, nil
}

// Fields extracts a mapping of field names to sub-schemas.
// Names are returned sorted so that callers iterate deterministically.
func (s Schema) Fields(key string) ([]string, map[string]Schema, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return nil, nil, nil
	}

	var entries map[string]any
	switch v := raw.(type) {
	case Schema:
		entries = v
	case map[string]any:
		entries = v
	case map[string]Schema:
		entries = make(map[string]any, len(v))
		for name, sub := range v {
			entries[name] = sub
		}
	default:
		return nil, nil, invalid(key, "must be a mapping of field schemas, got %T", raw)
	}

	names := make([]string, 0, len(entries))
	fields := make(map[string]Schema, len(entries))
	for name, v := range entries {
		sub, ok := asSchema(v)
		if !ok {
			return nil, nil, invalid(key+"."+name, "must be a schema mapping, got %T", v)
		}
		names = append(names, name)
		fields[name] = sub
	}
	sort.Strings(names)

	return names, fields, nil
}

func asSchema(v any) (Schema, bool) {
	switch m := v.(type) {
	case Schema:
		return m, true
	case map[string]any:
		return Schema(m), true
	default:
		return nil, false
	}
}

// Fingerprint returns a canonical encoding of the schema.
// Keys are sorted and every scalar carries its Go type, so float32(0.1) and
// 0.1 produce different fingerprints. Schema and map[string]any are encoded
// alike since extraction treats them alike.
func Fingerprint(s Schema) (string, error) {
	var b strings.Builder
	if err := writeCanonical(&b, map[string]any(s)); err != nil {
		return "", errors.Join(ErrNotFingerprintable, err)
	}
	return b.String(), nil
}

func writeCanonical(b *strings.Builder, v any) error {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
		return nil
	case string:
		b.WriteString(strconv.Quote(x))
		return nil
	case Schema:
		return writeMap(b, "", reflect.ValueOf(map[string]any(x)))
	case map[string]any:
		return writeMap(b, "", reflect.ValueOf(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		fmt.Fprintf(b, "%T:%v", v, v)
	case reflect.String:
		fmt.Fprintf(b, "%T:%s", v, strconv.Quote(rv.String()))
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		return writeMap(b, fmt.Sprintf("%T", v), rv)
	case reflect.Slice, reflect.Array:
		fmt.Fprintf(b, "%T[", v)
		for i := range rv.Len() {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeCanonical(b, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

func writeMap(b *strings.Builder, tag string, rv reflect.Value) error {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	b.WriteString(tag)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if err := writeCanonical(b, val.Interface()); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	b.WriteByte('}')
	return nil
}
