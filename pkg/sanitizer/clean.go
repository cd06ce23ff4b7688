package sanitizer

// undefined marks a declared field that the request did not carry.
type undefined struct{}

// MarshalJSON renders Undefined as null in case it escapes Clean.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (undefined) String() string {
	return "undefined"
}

// Undefined is the sentinel for "declared, optional and absent".
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Clean returns a copy of v with every Undefined map value removed at any
// depth. Strings and other scalars are returned unchanged.
func Clean(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if IsUndefined(item) {
				continue
			}
			out[k] = Clean(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			if IsUndefined(item) {
				continue
			}
			out[i] = Clean(item)
		}
		return out
	default:
		return v
	}
}

// CleanMap is Clean for the common top-level case. A nil map yields an empty one.
func CleanMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Clean(m).(map[string]any)
}
