// Package httpvalidate connects validator and response to net/http and chi.
//
// A Binder decodes the JSON body, chi route parameters and query string of a
// request, runs a validator.Validator and either stores the validator.Result
// in the request context or answers with the structured error:
//
//	b := httpvalidate.New(httpvalidate.WithLogger(log), httpvalidate.WithMetrics(m))
//
//	r := chi.NewRouter()
//	r.Use(httpvalidate.RequestID)
//	r.With(b.Rules(
//	    validator.ParamsID("id", true),
//	    validator.BodyString("name", true),
//	)).Put("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//	    res, _ := httpvalidate.FromContext(r.Context())
//	    b.JSON(w, r, http.StatusOK, update(res.Params["id"], res.Body), userSchema)
//	})
//
// Parameters validation errors answer 400 and are logged at warn level. Data
// validation errors from JSON answer 500 and are logged at error level.
// Malformed bodies answer 400, 413 or 415 with the same error shape.
//
// Query values arrive as strings; a key repeated in the query string arrives
// as an array of strings.
package httpvalidate
