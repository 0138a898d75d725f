package rulekit

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMessageTemplate renders failures as "{field} failed {predicate}".
// Templates may reference {field}, {predicate}, and any rule parameter by
// name; unknown placeholders are left untouched.
const DefaultMessageTemplate = "{field} failed {predicate}"

// MessageFunc renders the message for one failed check. Plug a custom one
// in with WithMessageFunc, or a custom template with WithMessageTemplate.
type MessageFunc func(field Path, predicate string, params Params) string

var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// RenderTemplate substitutes {field}, {predicate}, and parameter
// placeholders into a message template. It backs the default message
// rendering and is exported for catalog-based renderers.
func RenderTemplate(tpl string, field Path, predicate string, params Params) string {
	return placeholderRegex.ReplaceAllStringFunc(tpl, func(match string) string {
		name := match[1 : len(match)-1]
		switch name {
		case "field":
			return field.String()
		case "predicate":
			return predicate
		}
		if v, ok := params[name]; ok {
			return formatParam(v)
		}
		return match
	})
}

func formatParam(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case []string:
		return strings.Join(vv, ", ")
	case []any:
		parts := make([]string, len(vv))
		for i, e := range vv {
			parts[i] = formatParam(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// templateMessageFunc adapts a fixed template to the MessageFunc contract.
func templateMessageFunc(tpl string) MessageFunc {
	return func(field Path, predicate string, params Params) string {
		return RenderTemplate(tpl, field, predicate, params)
	}
}
