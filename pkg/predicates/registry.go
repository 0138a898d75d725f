package predicates

import (
	"errors"
	"sort"

	"github.com/dmitrymomot/rulekit"
)

// builtins is the full library keyed by registered name. Kept in one table
// so Names, Registry, and RegisterAll cannot drift apart.
var builtins = map[string]rulekit.Predicate{
	// kinds
	IsString:  isString,
	IsNumber:  isNumber,
	IsInt:     isInt,
	IsBool:    isBool,
	IsObject:  isObject,
	IsArray:   isArray,
	IsNull:    isNull,
	IsDefined: isDefined,

	// strings
	NonEmpty:     nonempty,
	MinLen:       minLen,
	MaxLen:       maxLen,
	Len:          exactLen,
	Prefix:       prefix,
	Suffix:       suffix,
	Contains:     contains,
	Pattern:      pattern,
	Alpha:        alpha,
	Alphanumeric: alphanumeric,
	Lowercase:    lowercase,
	Uppercase:    uppercase,
	OneOf:        oneOf,

	// numbers
	Min:        minNum,
	Max:        maxNum,
	Between:    between,
	Positive:   positive,
	NonZero:    nonzero,
	Integer:    integer,
	MultipleOf: multipleOf,

	// format
	Email:    email,
	URL:      urlCheck,
	Hostname: hostname,
	IP:       ipAddr,
	UUID:     uuidCheck,
	Slug:     slug,

	// timestamps
	Timestamp: timestamp,
	Before:    before,
	After:     after,
}

// Names returns every built-in predicate name, sorted.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the built-in predicate registered under name without going
// through a registry.
func Lookup(name string) (rulekit.Predicate, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Registry returns a fresh registry preloaded with the whole library.
func Registry() *rulekit.Registry {
	reg := rulekit.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		panic(err)
	}
	return reg
}

// RegisterAll adds the library to an existing registry in sorted name order.
// Names the caller already registered are left untouched; each collision is
// reported in the joined error, which matches rulekit.ErrDuplicatePredicate.
func RegisterAll(reg *rulekit.Registry) error {
	var errs []error
	for _, name := range Names() {
		if err := reg.Register(name, builtins[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
