package rulekit

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Path addresses one location inside a structured value: a top-level key, a
// nested key, or an element reached through array indices. The selector
// syntax is dotted keys with optional bracketed indices:
//
//	age
//	user.name
//	items[0].id
//	[2].host
//
// A Path is parsed once, at rule construction time, and reused for every
// validation call.
type Path struct {
	raw  string
	segs []pathSegment
}

// pathSegment is one step of a Path: either an object key or an array index.
type pathSegment struct {
	key     string
	index   int
	indexed bool
}

// ParsePath parses a field selector. It fails with an error matching
// ErrInvalidPath when the selector is empty or malformed.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("%w: empty selector", ErrInvalidPath)
	}

	var segs []pathSegment
	for i, token := range strings.Split(s, ".") {
		key, indices, err := splitToken(token)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		if key == "" && (i > 0 || len(indices) == 0) {
			return Path{}, fmt.Errorf("%w: empty key segment in %q", ErrInvalidPath, s)
		}
		if key != "" {
			segs = append(segs, pathSegment{key: key})
		}
		for _, idx := range indices {
			segs = append(segs, pathSegment{index: idx, indexed: true})
		}
	}

	return Path{raw: s, segs: segs}, nil
}

// MustPath parses a field selector and panics on failure. Intended for
// selectors known at compile time.
func MustPath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// splitToken splits one dot-separated token into its key and trailing
// bracketed indices, e.g. "items[0][1]" -> "items", [0 1].
func splitToken(token string) (string, []int, error) {
	open := strings.IndexByte(token, '[')
	if open == -1 {
		if strings.ContainsRune(token, ']') {
			return "", nil, fmt.Errorf("unmatched ']' in %q", token)
		}
		return token, nil, nil
	}

	key := token[:open]
	if strings.ContainsRune(key, ']') {
		return "", nil, fmt.Errorf("unmatched ']' in %q", token)
	}
	rest := token[open:]
	var indices []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("unexpected %q after index in %q", string(rest[0]), token)
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, fmt.Errorf("unmatched '[' in %q", token)
		}
		digits := rest[1:end]
		idx, err := strconv.Atoi(digits)
		if err != nil || idx < 0 || (len(digits) > 1 && digits[0] == '0') {
			return "", nil, fmt.Errorf("invalid index %q in %q", digits, token)
		}
		indices = append(indices, idx)
		rest = rest[end+1:]
	}
	return key, indices, nil
}

// String returns the canonical selector form.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return p.raw
	}
	var b strings.Builder
	for i, seg := range p.segs {
		if seg.indexed {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.key)
	}
	return b.String()
}

// IsZero reports whether the path is the unparsed zero value.
func (p Path) IsZero() bool {
	return len(p.segs) == 0
}

// MarshalText encodes the path as its selector string.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a selector string in place.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Resolve walks the input value along the path. The second return value
// reports whether the location exists; a missing location is an absent
// marker, never an error, so required-versus-optional policy stays with the
// validator. A present location holding an explicit nil resolves as found.
func (p Path) Resolve(input any) (any, bool) {
	current := input
	for _, seg := range p.segs {
		v, ok := derefValue(current)
		if !ok {
			return nil, false
		}

		if seg.indexed {
			current, ok = resolveIndex(v, seg.index)
		} else {
			current, ok = resolveKey(v, seg.key)
		}
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// derefValue unwraps interfaces and pointers. Nil anywhere along a path
// means the remainder of the path is absent.
func derefValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	return rv, true
}

func resolveIndex(rv reflect.Value, idx int) (any, bool) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	default:
		return nil, false
	}
}

func resolveKey(rv reflect.Value, key string) (any, bool) {
	switch rv.Kind() {
	case reflect.Map:
		if m, ok := rv.Interface().(map[string]any); ok {
			v, ok := m[key]
			return v, ok
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		return resolveStructField(rv, key)
	default:
		return nil, false
	}
}

// resolveStructField matches a struct field the way encoding/json does:
// json tag name first, then exact field name, then a case-insensitive
// fallback. Unexported fields and fields tagged "-" are invisible.
func resolveStructField(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	fold := -1
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tagName := jsonTagName(field.Tag.Get("json"))
		if tagName == "-" {
			continue
		}
		if tagName == key {
			return rv.Field(i).Interface(), true
		}
		if tagName == "" {
			if field.Name == key {
				return rv.Field(i).Interface(), true
			}
			if fold == -1 && strings.EqualFold(field.Name, key) {
				fold = i
			}
		}
	}
	if fold >= 0 {
		return rv.Field(fold).Interface(), true
	}
	return nil, false
}

func jsonTagName(tag string) string {
	if tag == "" {
		return ""
	}
	if idx := strings.IndexByte(tag, ','); idx != -1 {
		return tag[:idx]
	}
	return tag
}
