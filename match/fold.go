package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"strdist/options"
)

var separatorReplacer = strings.NewReplacer("_", " ", "-", " ")

// Fold applies the preprocessing steps selected by flags, in this order:
// NFC composition, separators, camelCase splitting, case folding and
// whitespace collapsing.
func Fold(s string, flags options.FoldEnum) string {
	if flags.Has(options.FoldNFC) {
		s = norm.NFC.String(s)
	}

	if flags.Has(options.FoldSeparators) {
		s = separatorReplacer.Replace(s)
	}

	if flags.Has(options.FoldCamelCase) {
		s = splitCamelCase(s)
	}

	if flags.Has(options.FoldCase) {
		// a Caser keeps state, so one per call
		s = cases.Fold().String(s)
	}

	if flags.Has(options.FoldSpaces) {
		s = strings.Join(strings.Fields(s), " ")
	}

	return s
}

// splitCamelCase splits every word of s on camelCase boundaries.
// Examples:
//   - "OrderID" -> "Order ID"
//   - "customerName" -> "customer Name"
//   - "XMLParser" -> "XML Parser"
//   - "getHTTPResponse" -> "get HTTP Response"
func splitCamelCase(s string) string {
	var words []string
	for _, field := range strings.Fields(s) {
		words = append(words, tokenizeCamelCase(field)...)
	}

	return strings.Join(words, " ")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
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

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// Transition from lowercase to uppercase: "orderID" splits before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// End of acronym: "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
