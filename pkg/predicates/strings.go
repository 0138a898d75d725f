package predicates

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrymomot/rulekit"
)

// Registered names of the string predicates.
const (
	NonEmpty     = "nonempty"
	MinLen       = "minLen"
	MaxLen       = "maxLen"
	Len          = "len"
	Prefix       = "prefix"
	Suffix       = "suffix"
	Contains     = "contains"
	Pattern      = "pattern"
	Alpha        = "alpha"
	Alphanumeric = "alphanumeric"
	Lowercase    = "lowercase"
	Uppercase    = "uppercase"
	OneOf        = "oneOf"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// patternCache holds compiled params-supplied patterns. Patterns that fail to
// compile are not cached; the predicate just fails for them.
var patternCache sync.Map // pattern string -> *regexp.Regexp

func compilePattern(pattern string) (*regexp.Regexp, bool) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), true
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	patternCache.Store(pattern, re)
	return re, true
}

// nonempty fails for non-strings and strings that are empty after trimming
// whitespace.
func nonempty(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

func minLen(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n, ok := params.Int("value")
	return ok && utf8.RuneCountInString(s) >= n
}

func maxLen(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n, ok := params.Int("value")
	return ok && utf8.RuneCountInString(s) <= n
}

func exactLen(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n, ok := params.Int("value")
	return ok && utf8.RuneCountInString(s) == n
}

func prefix(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	p, ok := params.String("value")
	return ok && strings.HasPrefix(s, p)
}

func suffix(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	p, ok := params.String("value")
	return ok && strings.HasSuffix(s, p)
}

func contains(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	p, ok := params.String("value")
	return ok && strings.Contains(s, p)
}

// pattern matches against the regexp in the "value" parameter. A pattern
// that does not compile fails the check instead of panicking.
func pattern(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	p, ok := params.String("value")
	if !ok {
		return false
	}
	re, ok := compilePattern(p)
	return ok && re.MatchString(s)
}

func alpha(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && alphaRegex.MatchString(s)
}

func alphanumeric(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && alphanumericRegex.MatchString(s)
}

func lowercase(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && s == strings.ToLower(s)
}

func uppercase(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && s == strings.ToUpper(s)
}

// oneOf checks membership in the "values" string list parameter.
func oneOf(value any, params rulekit.Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	values, ok := params.Strings("values")
	return ok && slices.Contains(values, s)
}
