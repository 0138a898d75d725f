// Package i18n renders validation failure messages in the caller's language.
//
// A Catalog maps BCP 47 language tags to message templates keyed by predicate
// name. Requested languages are negotiated with golang.org/x/text/language,
// so "de-CH" finds "de" and a full Accept-Language header picks the best
// supported match. Lookup falls back from the predicate's template to the
// language's "default" entry, then to the framework default.
//
// Templates use the core placeholder syntax: {field}, {predicate}, and rule
// parameters by name. The implicit required check renders through the
// "required" key like any other predicate.
//
//	cat, err := i18n.ParseYAML(data)
//	if err != nil { ... }
//
//	v, err := rulekit.Build(rs, reg,
//	    rulekit.WithMessageFunc(cat.MessageFunc(r.Header.Get("Accept-Language"))),
//	)
//
// Catalogs are immutable after construction and safe for concurrent use.
package i18n
