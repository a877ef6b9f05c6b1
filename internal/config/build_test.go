package config

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strdist/metric"
)

func TestBuildExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		expected string
	}{
		{"levenshtein", "Levenshtein"},
		{"osa", "OptimalStringAlignment"},
		{"damerau", "DamerauLevenshtein"},
		{"tokenmax(levenshtein)", "TokenMax(Normalize(Levenshtein))"},
		{"jarowinkler", "Winkler(Jaro)"},
		{"winkler(jaro)", "Winkler(Jaro)"},
		{"partial(cosine:3)", "Partial(Normalize(Cosine(3)))"},
		{"token_set(partial(ratcliff))", "TokenSet(Partial(RatcliffObershelp))"},
		{"qgram", "QGram(2)"},
		{"normalize(normalize(hamming))", "Normalize(Hamming)"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			m, err := BuildExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, metric.Describe(m), spew.Sdump(m))
		})
	}
}

func TestBuild_WinklerParameters(t *testing.T) {
	t.Parallel()

	p, maxLength := 0.2, 5
	d := &Descriptor{Metric: "winkler", P: &p, MaxLength: &maxLength, Inner: &Descriptor{Metric: "jaro"}}

	m, err := Build(d)
	require.NoError(t, err)
	assert.Equal(t, "Winkler(Jaro, p=0.2, threshold=0.7, maxlength=5)", metric.Describe(m))

	// defaults are applied to a copy
	assert.Nil(t, d.Threshold)

	expected := metric.MustWinkler(metric.Jaro(), metric.WithPrefixScale(0.2), metric.WithMaxPrefixLength(5))
	assert.InDelta(t, metric.Compare("MARTHA", "MARHTA", expected), metric.Compare("MARTHA", "MARHTA", m), 1e-12)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	p, maxLength := 0.5, 4

	tests := []struct {
		name   string
		d      *Descriptor
		target error
	}{
		{"nil", nil, ErrMissingInner},
		{"unknown", &Descriptor{Metric: "levenstein"}, ErrUnknownMetric},
		{"unknown inner", &Descriptor{Metric: "partial", Inner: &Descriptor{Metric: "soundex"}}, ErrUnknownMetric},
		{"missing inner", &Descriptor{Metric: "tokenmax"}, ErrMissingInner},
		{"unexpected inner", &Descriptor{Metric: "jaro", Inner: &Descriptor{Metric: "jaro"}}, metric.ErrInvalidConfiguration},
		{"bad q", &Descriptor{Metric: "cosine", Q: -1}, metric.ErrInvalidConfiguration},
		{
			"winkler overflow",
			&Descriptor{Metric: "winkler", P: &p, MaxLength: &maxLength, Inner: &Descriptor{Metric: "jaro"}},
			metric.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Build(tt.d)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, tt.target), "%+v", err)
		})
	}
}

func TestBuild_UnknownMetricHint(t *testing.T) {
	t.Parallel()

	_, err := BuildExpr("tokenmax(levenstein)")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), `did you mean "levenshtein"?`)
}
