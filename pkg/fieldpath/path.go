package fieldpath

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the pattern segment that matches any key or index.
const Wildcard = "*"

var (
	ErrEmptyPath      = errors.New("field path cannot be empty")
	ErrEmptySegment   = errors.New("field path contains an empty segment")
	ErrMalformedIndex = errors.New("field path contains a malformed index")
)

// SegmentKind tells how a segment addresses its container.
type SegmentKind int

const (
	KeySegment SegmentKind = iota
	IndexSegment
	WildcardSegment
)

// Segment is a single step of a path.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Path is a parsed field path pattern. The zero value is not usable; build
// one with Parse or MustParse.
type Path struct {
	raw      string
	segments []Segment
}

// Parse parses a field path pattern.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, ErrEmptyPath
	}

	var segments []Segment
	for part := range strings.SplitSeq(raw, ".") {
		parsed, err := parsePart(part)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %q", err, raw)
		}
		segments = append(segments, parsed...)
	}

	return Path{raw: raw, segments: segments}, nil
}

// MustParse is like Parse but panics on malformed patterns. Rules are built at
// route registration time, where a bad pattern must stop startup.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePart(part string) ([]Segment, error) {
	name, rest, hasIndex := strings.Cut(part, "[")
	if name == "" && !hasIndex {
		return nil, ErrEmptySegment
	}

	var segments []Segment
	if name != "" {
		segments = append(segments, keyOrWildcard(name))
	}
	if !hasIndex {
		return segments, nil
	}
	if rest == "" {
		return nil, ErrMalformedIndex
	}

	// rest looks like "0]" or "0][1]" or "*]"
	for rest != "" {
		idx, after, ok := strings.Cut(rest, "]")
		if !ok || idx == "" {
			return nil, ErrMalformedIndex
		}
		if idx == Wildcard {
			segments = append(segments, Segment{Kind: WildcardSegment, Key: Wildcard})
		} else {
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return nil, ErrMalformedIndex
			}
			segments = append(segments, Segment{Kind: IndexSegment, Index: n})
		}

		if after == "" {
			break
		}
		if after[0] != '[' {
			return nil, ErrMalformedIndex
		}
		rest = after[1:]
	}

	return segments, nil
}

func keyOrWildcard(name string) Segment {
	if name == Wildcard {
		return Segment{Kind: WildcardSegment, Key: Wildcard}
	}
	return Segment{Kind: KeySegment, Key: name}
}

// String returns the pattern as it was written.
func (p Path) String() string {
	return p.raw
}

// Segments returns a copy of the parsed segments.
func (p Path) Segments() []Segment {
	return slices.Clone(p.segments)
}

// HasWildcard reports whether the pattern contains a wildcard segment.
func (p Path) HasWildcard() bool {
	return slices.ContainsFunc(p.segments, func(s Segment) bool {
		return s.Kind == WildcardSegment
	})
}

// Instance is one concrete location a pattern resolved to.
type Instance struct {
	// Segments holds concrete key and index segments. A wildcard that matched
	// nothing stays in place as a WildcardSegment.
	Segments []Segment
	Value    any
	// Present is true when the final key or index exists, even if its value is nil.
	Present bool
	// ParentPresent is true when the container holding the final segment exists.
	ParentPresent bool
}

// String formats the concrete location, e.g. "p1.a" or "items[0].id".
func (i Instance) String() string {
	return format(i.Segments)
}

// Resolve expands the pattern against root. Wildcards expand in sorted key
// order (or index order for slices). A wildcard with nothing to match yields
// a single absent instance.
func (p Path) Resolve(root any) []Instance {
	var out []Instance
	resolve(root, true, p.segments, nil, &out)
	return out
}

func resolve(node any, exists bool, rest, prefix []Segment, out *[]Instance) {
	if len(rest) == 0 {
		*out = append(*out, Instance{
			Segments:      slices.Clone(prefix),
			Value:         node,
			Present:       exists,
			ParentPresent: len(prefix) == 0 || exists,
		})
		return
	}

	seg, rest := rest[0], rest[1:]
	switch seg.Kind {
	case KeySegment:
		value, ok, container := lookupKey(node, seg.Key)
		resolveChild(value, ok, container, seg, rest, prefix, out)
	case IndexSegment:
		value, ok, container := lookupIndex(node, seg.Index)
		resolveChild(value, ok, container, seg, rest, prefix, out)
	case WildcardSegment:
		children := expand(node)
		if len(children) == 0 {
			resolveChild(nil, false, false, seg, rest, prefix, out)
			return
		}
		for _, child := range children {
			value, _, _ := lookup(node, child)
			resolveChild(value, true, true, child, rest, prefix, out)
		}
	}
}

// resolveChild records whether the container was there so leaves can tell an
// absent key in an existing object from a missing parent.
func resolveChild(value any, ok, container bool, seg Segment, rest, prefix []Segment, out *[]Instance) {
	next := append(slices.Clone(prefix), seg)
	if len(rest) == 0 {
		*out = append(*out, Instance{
			Segments:      next,
			Value:         value,
			Present:       ok,
			ParentPresent: container,
		})
		return
	}
	resolve(value, ok, rest, next, out)
}

func lookup(node any, seg Segment) (any, bool, bool) {
	if seg.Kind == IndexSegment {
		return lookupIndex(node, seg.Index)
	}
	return lookupKey(node, seg.Key)
}

func lookupKey(node any, key string) (value any, ok bool, container bool) {
	switch m := node.(type) {
	case map[string]any:
		value, ok = m[key]
		return value, ok, true
	case map[string]string:
		s, ok := m[key]
		return s, ok, true
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false, false
	}
	mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !mv.IsValid() {
		return nil, false, true
	}
	return mv.Interface(), true, true
}

func lookupIndex(node any, idx int) (value any, ok bool, container bool) {
	if s, isSlice := node.([]any); isSlice {
		if idx < len(s) {
			return s[idx], true, true
		}
		return nil, false, true
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false, false
	}
	if idx < rv.Len() {
		return rv.Index(idx).Interface(), true, true
	}
	return nil, false, true
}

func expand(node any) []Segment {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		segs := make([]Segment, len(keys))
		for i, k := range keys {
			segs[i] = Segment{Kind: KeySegment, Key: k}
		}
		return segs
	case reflect.Slice, reflect.Array:
		segs := make([]Segment, rv.Len())
		for i := range segs {
			segs[i] = Segment{Kind: IndexSegment, Index: i}
		}
		return segs
	default:
		return nil
	}
}

func format(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		switch seg.Kind {
		case IndexSegment:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg.Key)
		}
	}
	return b.String()
}
