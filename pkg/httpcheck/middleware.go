package httpcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rulekit"
)

type documentContextKey struct{}

// Option configures the middleware.
type Option func(*options)

type options struct {
	cfg    Config
	logger *slog.Logger
}

// WithConfig replaces the default limits.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger for rejected requests. Logging is discarded by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Middleware validates JSON request bodies before they reach the handler.
//
// The request must carry an application/json content type (415 otherwise),
// fit the configured size limit (413), and decode as JSON (400). The decoded
// document then runs through the validator: failures produce a 422 response
// with the marshaled Result, successes store the document in the request
// context for the handler to pick up with FromContext.
//
// Middleware panics when v is nil; the validator is fixed at wiring time.
func Middleware(v *rulekit.Validator, opts ...Option) func(http.Handler) http.Handler {
	if v == nil {
		panic("httpcheck: nil validator")
	}

	o := options{
		cfg:    Config{MaxBodyBytes: 1 << 20},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doc, err := decodeBody(w, r, o.cfg.MaxBodyBytes)
			if err != nil {
				status := statusFor(err)
				o.logger.DebugContext(r.Context(), "request rejected",
					"status", status, "error", err)
				writeJSON(w, status, map[string]string{"error": err.Error()})
				return
			}

			res := v.Validate(doc)
			if !res.Valid {
				o.logger.DebugContext(r.Context(), "validation failed",
					"fields", res.Fields())
				if o.cfg.MaxErrors > 0 && len(res.Errors) > o.cfg.MaxErrors {
					res.Errors = res.Errors[:o.cfg.MaxErrors]
				}
				writeJSON(w, http.StatusUnprocessableEntity, res)
				return
			}

			ctx := context.WithValue(r.Context(), documentContextKey{}, doc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the validated document stored by the middleware.
func FromContext(ctx context.Context) (any, bool) {
	doc := ctx.Value(documentContextKey{})
	return doc, doc != nil
}

// decodeBody enforces the content type and size limit, then decodes the
// whole body as one JSON document.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64) (any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	decoder := json.NewDecoder(body)
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	// The body must be a single document.
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
	}
	return doc, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
