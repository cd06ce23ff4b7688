package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", or returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
// Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Route records the matched route pattern, e.g. "/users/{id}".
func Route(pattern string) slog.Attr {
	return slog.String("route", pattern)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Location records the request part a rule applies to (body, params, query).
func Location(loc string) slog.Attr {
	return slog.String("location", loc)
}

// Field records a field path such as "items[0].id".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// Kind records the kind of a structured validation error.
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Violations records how many field failures a validation pass produced.
func Violations(n int) slog.Attr {
	return slog.Int("violations", n)
}

// Rules records how many rules a validation pass evaluated.
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}
