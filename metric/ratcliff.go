package metric

import "sort"

// Block is a maximal run where two strings agree. Offsets are 0-based rune
// positions.
type Block struct {
	Start1 int
	Start2 int
	Length int
}

type ratcliffObershelp struct{}

// RatcliffObershelp is one minus the Ratcliff/Obershelp pattern matching
// similarity, 2*M/(len1+len2) where M is the total length of the matching
// blocks.
func RatcliffObershelp() Metric { return ratcliffObershelp{} }

func (ratcliffObershelp) Kind() KindEnum   { return KindRatcliffObershelp }
func (ratcliffObershelp) Normalized() bool { return true }
func (ratcliffObershelp) String() string   { return KindRatcliffObershelp.String() }

func (ratcliffObershelp) distance(s1, s2 string, _ float64) float64 {
	r1, r2 := []rune(s1), []rune(s2)

	total := len(r1) + len(r2)
	if total == 0 {
		return 0
	}

	matched := 0
	for _, b := range matchingBlocks(r1, r2, 0, 0, nil) {
		matched += b.Length
	}

	return 1 - 2*float64(matched)/float64(total)
}

// MatchingBlocks decomposes s1 and s2 into matching blocks: the longest
// common substring, then recursively the blocks before and after it.
// Blocks are ordered by their offset into s1.
func MatchingBlocks(s1, s2 string) []Block {
	blocks := matchingBlocks([]rune(s1), []rune(s2), 0, 0, nil)

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Start1 < blocks[j].Start1
	})

	return blocks
}

func matchingBlocks(a, b []rune, off1, off2 int, out []Block) []Block {
	start1, start2, length := longestCommonPattern(a, b)
	if length == 0 {
		return out
	}

	out = append(out, Block{Start1: start1 + off1, Start2: start2 + off2, Length: length})

	out = matchingBlocks(a[:start1], b[:start2], off1, off2, out)

	end1, end2 := start1+length, start2+length

	return matchingBlocks(a[end1:], b[end2:], off1+end1, off2+end2, out)
}

// longestCommonPattern returns the 0-based starts and length of the longest
// common substring. Ties go to the run that ends first while scanning the
// shorter string.
func longestCommonPattern(a, b []rune) (start1, start2, length int) {
	if len(a) > len(b) {
		start2, start1, length = longestCommonPattern(b, a)

		return start1, start2, length
	}

	// run[i2] holds the 1-based start in b of the run ending at i2 on the
	// previous row, 0 when there is none
	run := make([]int, len(b))

	for i1, ch1 := range a {
		diag := 0

		for i2, ch2 := range b {
			next := 0

			if ch1 == ch2 {
				next = i2 + 1
				if diag > 0 {
					next = diag
				}

				if cur := i2 + 2 - next; cur > length {
					start1, start2, length = i1+1-cur, next-1, cur
				}
			}

			run[i2], diag = next, run[i2]
		}
	}

	return start1, start2, length
}
