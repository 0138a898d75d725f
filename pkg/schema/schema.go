package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit"
)

// Format names a supported rule document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ruleDoc is the wire shape of one rule. The stable format is a sequence of
// these objects; TOML cannot express a top-level array, so the sequence is
// wrapped in a {rules: [...]} document there. Decode accepts either form in
// every format.
type ruleDoc struct {
	Field      string    `json:"field" yaml:"field" toml:"field"`
	Predicates []predDoc `json:"predicates" yaml:"predicates" toml:"predicates"`
	Optional   bool      `json:"optional,omitempty" yaml:"optional,omitempty" toml:"optional,omitempty"`
}

type predDoc struct {
	Name   string         `json:"name" yaml:"name" toml:"name"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

type document struct {
	Rules []ruleDoc `json:"rules" yaml:"rules" toml:"rules"`
}

// Decode parses a rule document and builds a RuleSet from it. Construction
// goes through the regular rule checks, so malformed selectors, empty
// predicate lists, and duplicate paths fail with a *DecodeError identifying
// the offending rule.
func Decode(data []byte, format Format) (*rulekit.RuleSet, error) {
	rules, err := unmarshalRules(data, format)
	if err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	rs := rulekit.NewRuleSet()
	for i, doc := range rules {
		specs := make([]rulekit.PredicateSpec, 0, len(doc.Predicates))
		for _, p := range doc.Predicates {
			specs = append(specs, rulekit.Check(p.Name, rulekit.Params(p.Params)))
		}

		rule, err := newRule(doc.Field, doc.Optional, specs)
		if err != nil {
			return nil, &DecodeError{Index: i, Field: doc.Field, Err: err}
		}
		if err := rs.AddRule(rule); err != nil {
			return nil, &DecodeError{Index: i, Field: doc.Field, Err: err}
		}
	}
	return rs, nil
}

func newRule(field string, optional bool, specs []rulekit.PredicateSpec) (rulekit.Rule, error) {
	if optional {
		return rulekit.NewOptionalRule(field, specs...)
	}
	return rulekit.NewRule(field, specs...)
}

// DecodeFile reads a rule document, inferring the format from the extension.
func DecodeFile(path string) (*rulekit.RuleSet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Decode(data, format)
}

// Encode serializes the RuleSet in declaration order. JSON and YAML emit the
// bare rule sequence; TOML emits the wrapped document.
func Encode(rs *rulekit.RuleSet, format Format) ([]byte, error) {
	if rs == nil {
		return nil, rulekit.ErrNilRuleSet
	}

	rules := make([]ruleDoc, 0, rs.Len())
	for _, rule := range rs.Rules() {
		specs := make([]predDoc, 0, len(rule.Predicates))
		for _, spec := range rule.Predicates {
			specs = append(specs, predDoc{Name: spec.Name, Params: spec.Params})
		}
		rules = append(rules, ruleDoc{
			Field:      rule.Field.String(),
			Predicates: specs,
			Optional:   rule.Optional,
		})
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(rules, "", "  ")
	case FormatYAML:
		return yaml.Marshal(rules)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(document{Rules: rules}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// EncodeFile writes the RuleSet to a file, inferring the format from the
// extension.
func EncodeFile(rs *rulekit.RuleSet, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(rs, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write rules file: %w", err)
	}
	return nil
}

func unmarshalRules(data []byte, format Format) ([]ruleDoc, error) {
	switch format {
	case FormatJSON:
		if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("[")) {
			var rules []ruleDoc
			if err := json.Unmarshal(data, &rules); err != nil {
				return nil, err
			}
			return rules, nil
		}
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Rules, nil
	case FormatYAML:
		var rules []ruleDoc
		if err := yaml.Unmarshal(data, &rules); err == nil {
			return rules, nil
		}
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Rules, nil
	case FormatTOML:
		var doc document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Rules, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
