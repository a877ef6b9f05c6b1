package options

import (
	"strings"

	"github.com/cockroachdb/errors"
)

type FoldEnum int

const (
	FoldNFC        FoldEnum = 1 << iota // canonical composition, so "é" and "é" compare equal
	FoldCase                            // Unicode case folding
	FoldSeparators                      // '_' and '-' become spaces
	FoldCamelCase                       // camelCase and PascalCase split into words
	FoldSpaces                          // runs of whitespace collapse into one space, ends trimmed

	FoldAll  FoldEnum = (1 << iota) - 1 // all folds combined
	FoldNone FoldEnum = 0               // input compared as is
)

var foldNames = []struct {
	name string
	flag FoldEnum
}{
	{"nfc", FoldNFC},
	{"case", FoldCase},
	{"separators", FoldSeparators},
	{"camelcase", FoldCamelCase},
	{"spaces", FoldSpaces},
}

// Has reports whether every bit of flag is set.
func (f FoldEnum) Has(flag FoldEnum) bool {
	return f&flag == flag
}

// String lists the set folds separated by commas.
func (f FoldEnum) String() string {
	switch f {
	case FoldNone:
		return "none"
	case FoldAll:
		return "all"
	}

	var parts []string
	for _, n := range foldNames {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, ",")
}

// ParseFold reads a comma separated list of fold names, "all" or "none".
func ParseFold(s string) (FoldEnum, error) {
	var f FoldEnum

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))

		switch part {
		case "", "none":
			continue
		case "all":
			f |= FoldAll

			continue
		}

		found := false
		for _, n := range foldNames {
			if n.name == part {
				f |= n.flag
				found = true

				break
			}
		}

		if !found {
			return FoldNone, errors.WithHint(
				errors.Newf("unknown fold %q", part),
				"valid folds: nfc, case, separators, camelcase, spaces, all, none",
			)
		}
	}

	return f, nil
}
