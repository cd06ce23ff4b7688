package predicate

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is safe for concurrent use and caches parsed tags.
	validate = validator.New()

	intRegex = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
)

// IsString succeeds for string values.
func IsString(v any) error {
	if _, ok := v.(string); ok {
		return nil
	}
	return fail(ErrNotString)
}

// IsInt succeeds for integral numbers and for strings holding an integer
// without leading zeros.
func IsInt(v any) error {
	switch n := v.(type) {
	case string:
		if intRegex.MatchString(n) {
			return nil
		}
		return fail(ErrNotInt)
	case json.Number:
		if intRegex.MatchString(n.String()) {
			return nil
		}
	}

	if f, ok := toFloat(v); ok && !math.IsInf(f, 0) && f == math.Trunc(f) {
		return nil
	}
	return fail(ErrNotInt)
}

// IsNumber succeeds only for numeric values; numeric strings are rejected.
func IsNumber(v any) error {
	if _, ok := toFloat(v); ok {
		return nil
	}
	return fail(ErrNotNumber)
}

// IsDecimal succeeds for finite numbers and for strings such as "1", "-2.50".
func IsDecimal(v any) error {
	if s, ok := v.(string); ok {
		if err := validate.Var(s, "required,numeric"); err != nil {
			return fail(ErrNotDecimal)
		}
		return nil
	}

	if f, ok := toFloat(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return nil
	}
	return fail(ErrNotDecimal)
}

// IsBoolean succeeds for booleans and their textual or numeric forms:
// "true", "false", "1", "0", 1 and 0.
func IsBoolean(v any) error {
	s, ok := stringify(v)
	if !ok {
		return fail(ErrNotBoolean)
	}
	switch s {
	case "true", "false", "1", "0":
		return nil
	default:
		return fail(ErrNotBoolean)
	}
}

// IsEmail succeeds for strings holding a valid email address.
func IsEmail(v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return fail(ErrInvalidEmail)
	}
	if err := validate.Var(s, "email"); err != nil {
		return fail(ErrInvalidEmail)
	}
	return nil
}

// IsDigits succeeds for non-empty strings made of ASCII digits only.
func IsDigits(v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return fail(ErrNotDigits)
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return fail(ErrNotDigits)
		}
	}
	return nil
}

// HasLength succeeds for strings of exactly n characters.
func HasLength(v any, n int) error {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != n {
		return fail(ErrInvalidLength)
	}
	return nil
}

// IsArray succeeds for slices and arrays.
func IsArray(v any) error {
	if _, ok := v.([]any); ok {
		return nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return nil
	default:
		return fail(ErrNotArray)
	}
}

// IsIn succeeds when the textual form of a scalar value is one of allowed.
func IsIn(v any, allowed []string) error {
	s, ok := stringify(v)
	if !ok || !slices.Contains(allowed, s) {
		return fail(ErrNotAllowed)
	}
	return nil
}

// stringify renders scalars the way they would appear in a query string.
func stringify(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
