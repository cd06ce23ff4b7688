package httpvalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apivalidate/pkg/logger"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger for rejected requests and responses. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics records validation outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(b *Binder) {
		b.metrics = m
	}
}

// WithMaxBodySize caps the request body size. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(b *Binder) {
		if n > 0 {
			b.maxBodySize = n
		}
	}
}

// WithResponseValidation toggles schema checks in JSON.
func WithResponseValidation(enabled bool) Option {
	return func(b *Binder) {
		b.validateResponses = enabled
	}
}

// Binder turns HTTP requests into validator.Input, runs a Validator and writes
// structured validation errors. It is safe for concurrent use.
type Binder struct {
	logger            *slog.Logger
	metrics           *Metrics
	maxBodySize       int64
	validateResponses bool
}

func New(opts ...Option) *Binder {
	b := &Binder{
		logger:            slog.Default(),
		maxBodySize:       defaultMaxBodySize,
		validateResponses: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(logger.Component("httpvalidate"))
	return b
}

// NewFromConfig creates a Binder from cfg. Options are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Binder {
	base := []Option{
		WithMaxBodySize(cfg.MaxBodySize),
		WithResponseValidation(cfg.ValidateResponses),
	}
	return New(append(base, opts...)...)
}

type resultKey struct{}

// FromContext returns the validated request data stored by the middleware.
func FromContext(ctx context.Context) (validator.Result, bool) {
	res, ok := ctx.Value(resultKey{}).(validator.Result)
	return res, ok
}

// Rules is a shorthand for Validate with a Validator built from rules.
func (b *Binder) Rules(rules ...validator.FieldRule) func(http.Handler) http.Handler {
	return b.Validate(validator.New(rules, validator.WithLogger(b.logger)))
}

// Validate returns middleware that validates every request with v. Valid
// requests continue with the Result in their context; invalid ones get a
// structured error response and never reach next.
func (b *Binder) Validate(v *validator.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routePattern(r)

			in, status, err := b.Input(w, r)
			if err != nil {
				b.metrics.RecordMalformed(route)
				b.writeError(w, r, status, err)
				return
			}

			start := time.Now()
			res, err := v.Validate(r.Context(), in)
			b.metrics.RecordRequest(route, validator.ExtractValidationErrors(err), time.Since(start).Seconds())
			if err != nil {
				b.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), resultKey{}, res)))
		})
	}
}

// Input splits r into body, route params and query. On a malformed request it
// returns the HTTP status to answer with and a *validator.Error.
func (b *Binder) Input(w http.ResponseWriter, r *http.Request) (validator.Input, int, error) {
	body, err := b.decodeBody(w, r)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, ErrUnsupportedMediaType):
			status = http.StatusUnsupportedMediaType
		case errors.Is(err, ErrBodyTooLarge):
			status = http.StatusRequestEntityTooLarge
		}
		return validator.Input{}, status, validator.NewParametersError(validator.ValidationErrors{{
			Message:  err.Error(),
			Location: validator.LocationBody,
		}})
	}

	return validator.Input{
		Body:   body,
		Params: routeParams(r),
		Query:  queryValues(r),
	}, 0, nil
}

func (b *Binder) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return map[string]any{}, nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, b.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	// Numbers stay json.Number so large integers keep their exact digits.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the JSON object", ErrInvalidJSON)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: body has to be a JSON object", ErrInvalidJSON)
	}
	return body, nil
}

func routeParams(r *http.Request) map[string]any {
	params := make(map[string]any)
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		// chi stores the catch-all segment under "*", which no path pattern can name.
		if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

// queryValues keeps single values as strings and repeated keys as arrays.
func queryValues(r *http.Request) map[string]any {
	query := r.URL.Query()
	out := make(map[string]any, len(query))
	for key, values := range query {
		if len(values) == 1 {
			out[key] = values[0]
			continue
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		out[key] = list
	}
	return out
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
