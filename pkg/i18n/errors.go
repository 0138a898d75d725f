package i18n

import "errors"

var (
	// ErrNoMessages is returned when a catalog is built without any language.
	ErrNoMessages = errors.New("no messages provided")

	// ErrInvalidLanguage is returned when a language key is not a valid BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrUnknownLanguage is returned when the default language has no messages.
	ErrUnknownLanguage = errors.New("language not in catalog")

	// ErrUnsupportedFile is returned when a catalog file extension is not recognized.
	ErrUnsupportedFile = errors.New("unsupported catalog file")
)
