// Package sanitizer normalises validated payloads before they reach handler
// code.
//
// Validation extracts only the declared fields of a request. Fields that were
// declared optional and were absent are recorded with the Undefined sentinel,
// while a client that explicitly sent null is recorded as nil. Clean walks the
// payload and drops every key holding Undefined, keeping nil values:
//
//	clean := sanitizer.Clean(map[string]any{
//	    "a": sanitizer.Undefined,
//	    "b": nil,
//	})
//	// clean == map[string]any{"b": nil}
//
// Clean descends into nested maps and into the elements of slices, and always
// returns freshly allocated containers, so the input can be shared safely.
// Slices are never pruned; an Undefined element becomes nil, which is how it
// would travel over JSON anyway.
//
// Clean is idempotent: Clean(Clean(x)) equals Clean(x).
package sanitizer
