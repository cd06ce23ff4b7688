package fieldpath

// Set stores value at the location described by segments inside dst,
// creating intermediate maps and slices as needed. Maps and slices found in
// value are copied so dst never shares containers with the source payload.
// Wildcard segments are treated as literal "*" keys.
func Set(dst map[string]any, segments []Segment, value any) {
	if dst == nil || len(segments) == 0 {
		return
	}
	setIn(dst, segments, Copy(value))
}

func setIn(node any, segments []Segment, value any) any {
	if len(segments) == 0 {
		return value
	}

	seg := segments[0]
	if seg.Kind == IndexSegment {
		s, _ := node.([]any)
		for len(s) <= seg.Index {
			s = append(s, nil)
		}
		s[seg.Index] = setIn(s[seg.Index], segments[1:], value)
		return s
	}

	m, ok := node.(map[string]any)
	if !ok || m == nil {
		m = make(map[string]any)
	}
	m[seg.Key] = setIn(m[seg.Key], segments[1:], value)
	return m
}

// Copy returns a deep copy of JSON-shaped containers (map[string]any and
// []any). Other values are returned as is.
func Copy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Copy(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Copy(item)
		}
		return out
	default:
		return v
	}
}
