package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to a canonical lowercase form:
// CamelCase is tokenized first (so acronym boundaries survive the fold),
// then tokens are joined without separators.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// tokenizeCamelCase splits a CamelCase or snake_case string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "grid_cell" -> ["grid", "cell"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsNewToken reports whether a token boundary falls before position i.
func startsNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	// Transition from lowercase: "orderID" splits before 'I'.
	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// End of an acronym: "XMLParser" splits before 'P'.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
