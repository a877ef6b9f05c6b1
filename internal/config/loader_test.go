package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strdist/metric"
)

func TestParse_Mapping(t *testing.T) {
	t.Parallel()

	yamlData := `
metric: token_max
inner:
  metric: winkler
  p: 0.15
  inner: jaro
`

	d, err := Parse([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, "tokenmax", d.Metric)
	require.NotNil(t, d.Inner)
	assert.Equal(t, "winkler", d.Inner.Metric)
	require.NotNil(t, d.Inner.P)
	assert.InDelta(t, 0.15, *d.Inner.P, 1e-12)
	require.NotNil(t, d.Inner.Threshold)
	assert.InDelta(t, metric.DefaultBoostThreshold, *d.Inner.Threshold, 1e-12)
	require.NotNil(t, d.Inner.MaxLength)
	assert.Equal(t, metric.DefaultMaxPrefixLength, *d.Inner.MaxLength)
	require.NotNil(t, d.Inner.Inner)
	assert.Equal(t, "jaro", d.Inner.Inner.Metric)
}

func TestParse_ShortForm(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(`partial(cosine)`))
	require.NoError(t, err)

	assert.Equal(t, "partial", d.Metric)
	require.NotNil(t, d.Inner)
	assert.Equal(t, "cosine", d.Inner.Metric)
	assert.Equal(t, DefaultQ, d.Inner.Q)
}

func TestParse_JaroWinklerExpands(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(`metric: jaro-winkler`))
	require.NoError(t, err)

	assert.Equal(t, "winkler", d.Metric)
	require.NotNil(t, d.Inner)
	assert.Equal(t, "jaro", d.Inner.Metric)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"bad expression", `tokenmax(`},
		{"sequence", `[jaro, levenshtein]`},
		{"bad inner", "metric: partial\ninner: [jaro]"},
		{"bad field type", "metric: cosine\nq: three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	d, err := ParseExpr("tokenmax(cosine:3)")
	require.NoError(t, err)

	data, err := Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "tokenmax(cosine:3)\n", string(data))

	d, err = Parse([]byte("winkler(jaro)"))
	require.NoError(t, err)

	data, err = Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), "metric: winkler")
	assert.Contains(t, string(data), "inner: jaro")
	assert.Contains(t, string(data), "maxlength: 4")
}

func TestWriteFile_LoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metric.yaml")

	p := 0.2
	original := &Descriptor{Metric: "winkler", P: &p, Inner: &Descriptor{Metric: "jaro"}}

	require.NoError(t, WriteFile(original, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "winkler", loaded.Metric)
	require.NotNil(t, loaded.P)
	assert.InDelta(t, 0.2, *loaded.P, 1e-12)
	assert.Equal(t, "jaro", loaded.Inner.Metric)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
