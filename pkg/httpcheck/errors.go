package httpcheck

import "errors"

var (
	// ErrMissingContentType is returned when a request carries no content type.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType is returned for bodies that are not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrInvalidJSON is returned when the body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrParsingConfig is returned when environment variables cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
