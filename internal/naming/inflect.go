package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// title upper-cases the first letter of a word. Casers are stateful, so
// each call gets its own.
func title(word string) string {
	return cases.Title(language.Und, cases.NoLower).String(word)
}

// Underscore converts a CamelCase name to snake_case. Runs of capitals are
// treated as one word: "HTTPService" becomes "http_service".
func Underscore(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			if i > 0 {
				prev := name[i-1]
				nextLower := i+1 < len(name) && isLower(name[i+1])
				if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Camelize converts a snake_case identifier to CamelCase: "test_app" becomes
// "TestApp".
func Camelize(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(title(part))
	}
	return b.String()
}

// Humanize turns a CamelCase or snake_case name into space-separated words:
// "VeryNewActivity" becomes "Very New Activity".
func Humanize(name string) string {
	words := strings.Split(Underscore(name), "_")
	out := words[:0]
	for _, w := range words {
		if w != "" {
			out = append(out, title(w))
		}
	}
	return strings.Join(out, " ")
}
