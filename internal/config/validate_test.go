package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strdist/internal/diagnostic"
)

func parsed(t *testing.T, yamlData string) *Descriptor {
	t.Helper()

	d, err := Parse([]byte(yamlData))
	require.NoError(t, err)

	return d
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"tokenmax(levenshtein)", "jarowinkler", "partial(cosine:3)", "tokenset(ratcliff)"} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			diags := Validate(parsed(t, expr))
			assert.True(t, diags.IsValid(), "%v", diags.All())
			assert.Empty(t, diags.Warnings)
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		code     string
		path     string
		messages int
	}{
		{"unknown metric", "tokenmax(levenstein)", diagnostic.CodeUnknownMetric, "metric.inner", 1},
		{"missing inner", "partial", diagnostic.CodeMissingInner, "metric", 1},
		{"unexpected inner", "jaro(levenshtein)", diagnostic.CodeUnexpectedInner, "metric", 1},
		{"jarowinkler with inner", "partial(jarowinkler(jaro))", diagnostic.CodeUnexpectedInner, "metric.inner", 1},
		{"negative q", "metric: cosine\nq: -2", diagnostic.CodeInvalidParameter, "metric", 1},
		{"threshold out of range", "metric: winkler\nthreshold: 1.5\ninner: jaro", diagnostic.CodeInvalidParameter, "metric", 1},
		{"negative p", "metric: winkler\np: -0.1\ninner: jaro", diagnostic.CodeInvalidParameter, "metric", 1},
		{"prefix overflow", "metric: winkler\np: 0.3\ninner: jaro", diagnostic.CodeInvalidParameter, "metric", 1},
		{"negative maxlength", "metric: winkler\nmaxlength: -1\ninner: jaro", diagnostic.CodeInvalidParameter, "metric", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := Validate(parsed(t, tt.yaml))
			require.Len(t, diags.Errors, tt.messages, "%v", diags.All())
			assert.Equal(t, tt.code, diags.Errors[0].Code)
			assert.Equal(t, tt.path, diags.Errors[0].Path)
			assert.Error(t, diags.Error())
		})
	}
}

func TestValidate_Suggestion(t *testing.T) {
	t.Parallel()

	diags := Validate(parsed(t, "tokenmax(levenstein)"))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, []string{`did you mean "levenshtein"?`}, diags.Errors[0].Suggestions)
}

func TestValidate_IgnoredParameters(t *testing.T) {
	t.Parallel()

	diags := Validate(parsed(t, "metric: levenshtein\nq: 3\np: 0.1"))
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeIgnoredParameter, diags.Warnings[0].Code)
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(nil).HasErrors())
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Contains(t, names, "levenshtein")
	assert.Contains(t, names, "tokenmax")
	assert.Contains(t, names, "jarowinkler")
	assert.Contains(t, names, "osa")
	assert.IsIncreasing(t, names)
}

func TestSuggestName(t *testing.T) {
	t.Parallel()

	name, ok := suggestName("Token-Sortt")
	require.True(t, ok)
	assert.Equal(t, "tokensort", name)

	_, ok = suggestName("zzzzzzzz")
	assert.False(t, ok)
}
