package httpcheck

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathParams collects chi route parameters into a document suitable for
// validation, so URL segments can run through the same rules as JSON bodies.
// The wildcard parameter "*" is skipped. Returns an empty map when the
// request was not routed by chi.
func PathParams(r *http.Request) map[string]any {
	params := make(map[string]any)
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
