package config

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected *Descriptor
	}{
		{"levenshtein", &Descriptor{Metric: "levenshtein"}},
		{"TokenMax(Levenshtein)", &Descriptor{Metric: "tokenmax", Inner: &Descriptor{Metric: "levenshtein"}}},
		{"cosine:3", &Descriptor{Metric: "cosine", Q: 3}},
		{" partial( cosine : 3 ) ", &Descriptor{Metric: "partial", Inner: &Descriptor{Metric: "cosine", Q: 3}}},
		{
			"tokenset(partial(ratcliff_obershelp))",
			&Descriptor{
				Metric: "tokenset",
				Inner: &Descriptor{
					Metric: "partial",
					Inner:  &Descriptor{Metric: "ratcliff_obershelp"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			d, err := ParseExpr(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseExpr_Errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "(levenshtein)", "tokenmax(", "tokenmax(levenshtein", "cosine:", "cosine:x", "jaro)", "jaro jaro"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseExpr(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	p := 0.2

	tests := []struct {
		name     string
		d        Descriptor
		expected string
	}{
		{"plain", Descriptor{Metric: "jaro"}, "jaro"},
		{"with q", Descriptor{Metric: "partial", Inner: &Descriptor{Metric: "cosine", Q: 3}}, "partial(cosine:3)"},
		{
			"winkler parameters",
			Descriptor{Metric: "tokenmax", Inner: &Descriptor{Metric: "winkler", P: &p, Inner: &Descriptor{Metric: "jaro"}}},
			"{metric: tokenmax, inner: {metric: winkler, p: 0.2, inner: jaro}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}
