package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strdist/metric"
)

func TestPartial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		m        metric.Metric
		a, b     string
		expected float64
	}{
		{"ratcliff equal length", metric.RatcliffObershelp(),
			"New York Mets vs Atlanta Braves", "Atlanta Braves vs New York Mets", 0.5483870967741935},
		{"levenshtein contained", metric.Levenshtein(), "martha", "the martha stewart show", 0},
		{"levenshtein swapped", metric.Levenshtein(), "the martha stewart show", "martha", 0},
		{"ratcliff contained", metric.RatcliffObershelp(), "yankees", "new york yankees", 0},
		{"levenshtein near", metric.Levenshtein(), "mrtha", "the martha show", 0.2},
		{"empty", metric.Levenshtein(), "", "abc", 0},
		{"ratcliff empty", metric.RatcliffObershelp(), "", "abc", 0},
		{"ratcliff no blocks", metric.RatcliffObershelp(), "ab", "xyz", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, metric.Evaluate(metric.Partial(tt.m), tt.a, tt.b), 1e-9)
		})
	}
}

func TestPartialEqualLengthDelegates(t *testing.T) {
	t.Parallel()

	for _, m := range []metric.Metric{metric.Levenshtein(), metric.Jaro(), metric.RatcliffObershelp()} {
		p := metric.Partial(m)

		for _, pair := range [][2]string{{"kitten", "sittin"}, {"abcd", "dcba"}, {"New York", "York New"}} {
			for _, bound := range []float64{1, 0.5, 0.1} {
				assert.Equal(t,
					metric.EvaluateWithin(metric.Normalize(m), pair[0], pair[1], bound),
					metric.EvaluateWithin(p, pair[0], pair[1], bound),
					"%s %q %q", p, pair[0], pair[1])
			}
		}
	}
}

func BenchmarkPartial(b *testing.B) {
	m := metric.Partial(metric.Levenshtein())
	for i := 0; i < b.N; i++ {
		metric.EvaluateWithin(m, "stewart", "the martha stewart show with guests", 0.3)
	}
}
