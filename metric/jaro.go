package metric

type jaro struct{}

// Jaro is one minus the Jaro similarity: runes match when equal and no
// further apart than half the longer length, and half-transpositions among
// the matched runes are penalised.
func Jaro() Metric { return jaro{} }

// JaroWinkler is Winkler(Jaro()) with the default boost parameters.
func JaroWinkler() Metric { return MustWinkler(Jaro()) }

func (jaro) Kind() KindEnum   { return KindJaro }
func (jaro) Normalized() bool { return true }
func (jaro) String() string   { return KindJaro.String() }

func (jaro) distance(s1, s2 string, _ float64) float64 {
	r1, r2 := reorderRunes([]rune(s1), []rune(s2))
	len1, len2 := len(r1), len(r2)

	// Two empty strings are identical
	if len2 == 0 {
		return 0
	}

	window := max(0, len2/2-1)
	flags := make([]bool, len2)
	matched := make([]rune, 0, len1)

	for i1, ch1 := range r1 {
		lo := max(0, i1-window)
		hi := min(len2-1, i1+window)

		for i2 := lo; i2 <= hi; i2++ {
			if !flags[i2] && ch1 == r2[i2] {
				flags[i2] = true
				matched = append(matched, ch1)

				break
			}
		}
	}

	m := len(matched)
	if m == 0 {
		return 1
	}

	// Matched runes that appear in a different order
	t, k := 0, 0

	for i2, ch2 := range r2 {
		if !flags[i2] {
			continue
		}

		if ch2 != matched[k] {
			t++
		}

		k++
	}

	fm := float64(m)

	return 1 - (fm/float64(len1)+fm/float64(len2)+(fm-float64(t)/2)/fm)/3
}
