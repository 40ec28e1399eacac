// Package placeholder replaces {{ name }} tokens in README templates.
//
// Substitution is a single regular-expression pass over the template: each
// token whose name is a key of the supplied map is replaced by the value,
// every other token is left verbatim. Inserted values are never rescanned, so
// the order in which names are resolved does not matter.
//
// The name "year" is reserved: when it has no non-empty value it resolves to
// the current calendar year.
package placeholder

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearKey is the reserved name filled with the current year by default.
const YearKey = "year"

// tokenPattern matches {{ name }} with optional whitespace around the name.
// Names may not contain braces; anything else is taken literally.
var tokenPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// Substitute replaces every placeholder in tmpl whose name is a key of vars.
func Substitute(tmpl string, vars map[string]string) string {
	return SubstituteAt(tmpl, vars, time.Now())
}

// SubstituteAt is Substitute with an explicit clock for the year default.
func SubstituteAt(tmpl string, vars map[string]string, now time.Time) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	year := strconv.Itoa(now.Year())

	return tokenPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := tokenName(token)
		if name == "" {
			return token
		}
		value, ok := vars[name]
		if name == YearKey && value == "" {
			return year
		}
		if !ok {
			return token
		}
		return value
	})
}

// Tokens returns the distinct placeholder names in tmpl in order of first
// appearance.
func Tokens(tmpl string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range tokenPattern.FindAllStringSubmatch(tmpl, -1) {
		name := m[1]
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Unresolved returns the placeholder names in tmpl that Substitute would
// leave in place for vars.
func Unresolved(tmpl string, vars map[string]string) []string {
	var missing []string
	for _, name := range Tokens(tmpl) {
		if name == YearKey {
			continue
		}
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func tokenName(token string) string {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return ""
	}
	return m[1]
}
