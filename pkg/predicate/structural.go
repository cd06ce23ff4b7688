package predicate

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayouts lists the layouts IsDate accepts for string values, tried in order.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// Intersects succeeds when every element of candidate appears in allowed.
// An empty candidate always succeeds.
func Intersects[T comparable](candidate, allowed []T) error {
	for _, item := range candidate {
		if !slices.Contains(allowed, item) {
			return fail(fmt.Errorf("%w: %v", ErrNotSubset, item))
		}
	}
	return nil
}

// IsDate succeeds for non-empty strings in one of DateLayouts, non-zero
// time.Time values and non-zero finite numbers (unix milliseconds).
func IsDate(v any) error {
	switch d := v.(type) {
	case nil:
		return fail(ErrInvalidDate)
	case string:
		if strings.TrimSpace(d) == "" {
			return fail(ErrInvalidDate)
		}
		for _, layout := range DateLayouts {
			if _, err := time.Parse(layout, d); err == nil {
				return nil
			}
		}
		return fail(ErrInvalidDate)
	case time.Time:
		if d.IsZero() {
			return fail(ErrInvalidDate)
		}
		return nil
	}

	if f, ok := toFloat(v); ok && f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return nil
	}
	return fail(ErrInvalidDate)
}

// IsPlainObject succeeds for string-keyed maps. A nil value passes only when
// the field is not required.
func IsPlainObject(v any, required bool) error {
	if v == nil {
		if required {
			return fail(ErrNotObject)
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return nil
	}
	return fail(ErrNotObject)
}

// IsObjectLike is the broader form of IsPlainObject: maps, slices, arrays,
// structs and non-nil pointers to any of those are accepted.
func IsObjectLike(v any, required bool) error {
	if v == nil {
		if required {
			return fail(ErrNotObjectLike)
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fail(ErrNotObjectLike)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return nil
	default:
		return fail(ErrNotObjectLike)
	}
}

// IsUUIDv4 succeeds for canonical (36 character, hyphenated) version 4 UUIDs
// of the RFC 4122 variant.
func IsUUIDv4(v any) error {
	s, ok := v.(string)
	if !ok {
		return fail(ErrInvalidUUID)
	}

	// Fast rejection before parsing; uuid.Parse also accepts urn and brace forms.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fail(ErrInvalidUUID)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrInvalidUUID, err))
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return fail(ErrInvalidUUID)
	}
	return nil
}
