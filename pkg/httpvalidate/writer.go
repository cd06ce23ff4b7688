package httpvalidate

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/apivalidate/pkg/logger"
	"github.com/dmitrymomot/apivalidate/pkg/response"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

const internalErrorMessage = "Internal server error"

// errorBody is written for errors that are not validation errors.
type errorBody struct {
	Message string `json:"message"`
}

// Error writes err as JSON. Parameters errors answer 400, data errors 500;
// anything else is reported as an opaque 500.
func (b *Binder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if validator.IsParametersError(err) {
		status = http.StatusBadRequest
	}
	b.writeError(w, r, status, err)
}

func (b *Binder) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	ctx := r.Context()

	verr, ok := validator.AsError(err)
	if !ok {
		b.logger.ErrorContext(ctx, "request failed",
			logger.Route(routePattern(r)),
			logger.Status(status),
			logger.Error(err),
		)
		writeJSON(w, status, errorBody{Message: internalErrorMessage})
		return
	}

	attrs := []any{
		logger.Route(routePattern(r)),
		logger.Status(status),
		logger.Kind(string(verr.Kind)),
	}
	if verr.Severity == validator.SeverityError {
		b.logger.ErrorContext(ctx, verr.Message, append(attrs, logger.Error(verr.Data.Cause))...)
	} else {
		b.logger.WarnContext(ctx, verr.Message, append(attrs, logger.Violations(len(verr.Data.Errors)))...)
	}

	writeJSON(w, status, verr)
}

// JSON validates payload against schema (when schema is not nil) and writes the
// cleaned value with status. A payload that breaks its schema is never sent;
// the client gets a 500 data validation error instead.
func (b *Binder) JSON(w http.ResponseWriter, r *http.Request, status int, payload any, schema response.SchemaFunc) {
	if schema != nil && b.validateResponses {
		out, err := response.Validate(payload, schema)
		b.metrics.RecordResponse(routePattern(r), err == nil)
		if err != nil {
			b.Error(w, r, err)
			return
		}
		payload = out
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
