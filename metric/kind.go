package metric

//go:generate go tool stringer -type=KindEnum -trimprefix=Kind -output=kind_string.go

// KindEnum identifies a metric variant.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindHamming
	KindLevenshtein
	KindOptimalStringAlignment
	KindDamerauLevenshtein
	KindJaro
	KindRatcliffObershelp
	KindQGram
	KindCosine
	KindJaccard
	KindOverlap
	KindSorensenDice
	KindNormalize
	KindWinkler
	KindPartial
	KindTokenSort
	KindTokenSet
	KindTokenMax

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsEdit reports whether the kind produces raw edit counts.
func (k KindEnum) IsEdit() bool {
	switch k {
	default:
		return false
	case KindHamming, KindLevenshtein, KindOptimalStringAlignment, KindDamerauLevenshtein:
		return true
	}
}

// IsQGram reports whether the kind compares q-gram profiles.
func (k KindEnum) IsQGram() bool {
	switch k {
	default:
		return false
	case KindQGram, KindCosine, KindJaccard, KindOverlap, KindSorensenDice:
		return true
	}
}

// IsModifier reports whether the kind wraps another metric.
func (k KindEnum) IsModifier() bool {
	switch k {
	default:
		return false
	case KindNormalize, KindWinkler, KindPartial, KindTokenSort, KindTokenSet, KindTokenMax:
		return true
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
