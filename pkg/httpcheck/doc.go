// Package httpcheck validates JSON request bodies against a rulekit
// validator before handlers run.
//
// # Architecture
//
// The package wraps a compiled *rulekit.Validator as standard net/http
// middleware. Requests must carry an application/json content type and fit
// the configured body limit; the decoded document is validated and, when it
// passes, stored in the request context for the handler:
//
//	v, _ := rulekit.Build(rules, predicates.Registry())
//	r := chi.NewRouter()
//	r.With(httpcheck.Middleware(v)).Post("/users", func(w http.ResponseWriter, r *http.Request) {
//		doc, _ := httpcheck.FromContext(r.Context())
//		// doc already satisfied every rule
//	})
//
// Rejected requests never reach the handler. The middleware answers 415 for
// a missing or non-JSON content type, 413 when the body exceeds the limit,
// 400 for malformed JSON, and 422 with the marshaled rulekit.Result when
// validation fails.
//
// # Configuration
//
// Limits load from the environment via LoadConfig (HTTPCHECK_MAX_BODY_BYTES,
// HTTPCHECK_MAX_ERRORS) or are set directly with WithConfig. MaxErrors
// truncates long 422 responses; zero reports every failure.
//
// PathParams extracts chi route parameters as a validatable document, so URL
// segments share the same rule vocabulary as request bodies.
package httpcheck
