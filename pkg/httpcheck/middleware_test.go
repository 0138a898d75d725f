package httpcheck_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/pkg/httpcheck"
	"github.com/dmitrymomot/rulekit/pkg/predicates"
)

func testValidator(t *testing.T) *rulekit.Validator {
	t.Helper()

	rs := rulekit.NewRuleSet()
	require.NoError(t, rs.Add("name", rulekit.Check(predicates.NonEmpty)))
	require.NoError(t, rs.Add("age",
		rulekit.Check(predicates.IsNumber),
		rulekit.Check(predicates.Min, rulekit.Params{"value": 18}),
	))
	require.NoError(t, rs.AddOptional("email", rulekit.Check(predicates.Email)))

	v, err := rulekit.Build(rs, predicates.Registry())
	require.NoError(t, err)
	return v
}

// captureHandler stores the document the middleware put into the context and
// answers 204 so tests can tell the handler ran.
func captureHandler(doc *any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, ok := httpcheck.FromContext(r.Context()); ok {
			*doc = got
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func postJSON(handler http.Handler, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

type errorReport struct {
	Valid  bool `json:"valid"`
	Errors []struct {
		Field     string `json:"field"`
		Predicate string `json:"predicate"`
		Message   string `json:"message"`
	} `json:"errors"`
}

func decodeReport(t *testing.T, rec *httptest.ResponseRecorder) errorReport {
	t.Helper()
	var res errorReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("valid body reaches the handler", func(t *testing.T) {
		t.Parallel()

		var doc any
		handler := httpcheck.Middleware(testValidator(t))(captureHandler(&doc))

		rec := postJSON(handler, `{"name":"ada","age":30}`, "application/json")

		require.Equal(t, http.StatusNoContent, rec.Code)
		m, ok := doc.(map[string]any)
		require.True(t, ok, "handler should receive the decoded document")
		assert.Equal(t, "ada", m["name"])
		assert.InDelta(t, 30, m["age"], 0)
	})

	t.Run("content type parameters are accepted", func(t *testing.T) {
		t.Parallel()

		var doc any
		handler := httpcheck.Middleware(testValidator(t))(captureHandler(&doc))

		rec := postJSON(handler, `{"name":"ada","age":30}`, "application/json; charset=utf-8")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotNil(t, doc)
	})

	t.Run("invalid body returns 422 with the report", func(t *testing.T) {
		t.Parallel()

		var doc any
		handler := httpcheck.Middleware(testValidator(t))(captureHandler(&doc))

		rec := postJSON(handler, `{"name":"","age":7}`, "application/json")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Nil(t, doc, "handler should not run on an invalid body")

		res := decodeReport(t, rec)
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, "name", res.Errors[0].Field)
		assert.Equal(t, predicates.NonEmpty, res.Errors[0].Predicate)
		assert.Equal(t, "age", res.Errors[1].Field)
		assert.Equal(t, predicates.Min, res.Errors[1].Predicate)
	})

	t.Run("absent required field fails validation", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `{"age":30}`, "application/json")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		res := decodeReport(t, rec)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "name", res.Errors[0].Field)
		assert.Equal(t, rulekit.PredicateRequired, res.Errors[0].Predicate)
	})

	t.Run("non-object document is validated as-is", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `[1, 2, 3]`, "application/json")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		res := decodeReport(t, rec)
		assert.False(t, res.Valid)
	})

	t.Run("missing content type returns 415", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `{"name":"ada","age":30}`, "")

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing content type")
	})

	t.Run("wrong content type returns 415", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `name=ada`, "application/x-www-form-urlencoded")

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported media type")
	})

	t.Run("malformed json returns 400", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `{"name": `, "application/json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid JSON")
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, ``, "application/json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "empty body")
	})

	t.Run("trailing data after the document returns 400", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t))(captureHandler(new(any)))

		rec := postJSON(handler, `{"name":"ada","age":30}{"again":true}`, "application/json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized body returns 413", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t),
			httpcheck.WithConfig(httpcheck.Config{MaxBodyBytes: 8}),
		)(captureHandler(new(any)))

		rec := postJSON(handler, `{"name":"ada","age":30}`, "application/json")

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "request body too large")
	})

	t.Run("max errors truncates the report", func(t *testing.T) {
		t.Parallel()

		handler := httpcheck.Middleware(testValidator(t),
			httpcheck.WithConfig(httpcheck.Config{MaxBodyBytes: 1 << 20, MaxErrors: 1}),
		)(captureHandler(new(any)))

		rec := postJSON(handler, `{"name":"","age":7,"email":"nope"}`, "application/json")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		res := decodeReport(t, rec)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "name", res.Errors[0].Field, "truncation keeps declaration order")
	})

	t.Run("nil validator panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			httpcheck.Middleware(nil)
		})
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context has no document", func(t *testing.T) {
		t.Parallel()

		doc, ok := httpcheck.FromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, doc)
	})
}
