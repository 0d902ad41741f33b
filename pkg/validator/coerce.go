package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Expected type names reported in CoercionContext.
const (
	expectedInt    = "int"
	expectedFloat  = "float"
	expectedString = "str"
	expectedBool   = "bool"
	expectedList   = "list"
	expectedObject = "object"
)

func coercionError(input any, expected string) ValidationError {
	return newError(KindTypeCoercionFailed, input, CoercionContext{Expected: expected})
}

// CoerceInt converts input to int64.
// Accepted: Go integers that fit int64, bools, integral finite floats,
// base-10 integer strings and byte slices (surrounding whitespace ignored)
// and json.Number holding an integral value. Everything else fails with KindTypeCoercionFailed.
func CoerceInt(input any) (int64, error) {
	switch v := input.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt(input, uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt(input, v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case float32:
		return floatToInt(input, float64(v))
	case float64:
		return floatToInt(input, v)
	case string:
		return parseInt(input, v)
	case []byte:
		return parseInt(input, string(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		// 10.0 and 1e3 are integral even though they are not integer literals.
		f, err := v.Float64()
		if err != nil {
			return 0, coercionError(input, expectedInt)
		}
		return floatToInt(input, f)
	default:
		return 0, coercionError(input, expectedInt)
	}
}

func uintToInt(input any, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, coercionError(input, expectedInt)
	}
	return int64(v), nil
}

func floatToInt(input any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, coercionError(input, expectedInt)
	}
	return int64(f), nil
}

func parseInt(input any, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, coercionError(input, expectedInt)
	}
	return n, nil
}

// CoerceFloat converts input to float64.
// Accepted: Go numbers, bools, numeric strings and byte slices, json.Number.
func CoerceFloat(input any) (float64, error) {
	switch v := input.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseFloat(input, v)
	case []byte:
		return parseFloat(input, string(v))
	case json.Number:
		return parseFloat(input, v.String())
	default:
		return 0, coercionError(input, expectedFloat)
	}
}

func parseFloat(input any, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, coercionError(input, expectedFloat)
	}
	return f, nil
}

// CoerceString accepts strings and valid UTF-8 byte slices.
func CoerceString(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case []byte:
		if !utf8.Valid(v) {
			return "", coercionError(input, expectedString)
		}
		return string(v), nil
	default:
		return "", coercionError(input, expectedString)
	}
}

// CoerceBool accepts bools, the numbers 0 and 1, and the usual textual
// spellings (true/false, 1/0, yes/no, on/off, t/f, y/n) in any case.
func CoerceBool(input any) (bool, error) {
	switch v := input.(type) {
	case bool:
		return v, nil
	case string:
		return parseBool(input, v)
	case []byte:
		return parseBool(input, string(v))
	case nil:
		return false, coercionError(input, expectedBool)
	}

	// Numbers go through the int path so 1.0 and uint8(0) behave like 1 and 0.
	n, err := CoerceInt(input)
	if err != nil {
		return false, coercionError(input, expectedBool)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, coercionError(input, expectedBool)
	}
}

func parseBool(input any, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	default:
		return false, coercionError(input, expectedBool)
	}
}
