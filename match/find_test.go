package match

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"strdist/metric"
	"strdist/options"
)

func ptr(s string) *string { return &s }

func fruits() []*string {
	return []*string{ptr("apple"), ptr("appel"), ptr("banana"), nil, ptr("apple pie"), ptr("APPLE")}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	found, report, err := FindAll(context.Background(), "apple", fruits(), metric.Levenshtein())
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, Candidate{Index: 0, Text: "apple", Score: 1}, found[0])
	assert.Equal(t, 5, report.Scanned)
	assert.Equal(t, []int{3}, report.Missing)
}

func TestFindAll_MinScore(t *testing.T) {
	t.Parallel()

	found, _, err := FindAll(context.Background(), "apple", fruits(), metric.Levenshtein(), WithMinScore(0.5))
	require.NoError(t, err)

	indexes := make([]int, 0, len(found))
	for _, c := range found {
		indexes = append(indexes, c.Index)
	}

	assert.Equal(t, []int{0, 1, 4}, indexes)
	assert.InDelta(t, 0.6, found[1].Score, 1e-12)
	assert.InDelta(t, 5.0/9, found[2].Score, 1e-12)
}

func TestFindAll_Fold(t *testing.T) {
	t.Parallel()

	found, _, err := FindAll(context.Background(), "Apple", fruits(), metric.Levenshtein(), WithFold(options.FoldCase))
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, 0, found[0].Index)
	assert.Equal(t, 5, found[1].Index)
	assert.Equal(t, "APPLE", found[1].Text)
}

func TestFindAll_MatchesSequentialScan(t *testing.T) {
	t.Parallel()

	m := metric.TokenMax(metric.Levenshtein())
	query := "new york mets"

	var candidates []*string
	for i := range 500 {
		if i%37 == 0 {
			candidates = append(candidates, nil)

			continue
		}

		candidates = append(candidates, ptr(fmt.Sprintf("new york %d mets %c", i%13, 'a'+rune(i%26))))
	}

	found, report, err := FindAll(context.Background(), query, candidates, m, WithMinScore(0.6), WithWorkers(3))
	require.NoError(t, err)

	var (
		expected CandidateList
		missing  []int
	)

	for i, s := range candidates {
		if s == nil {
			missing = append(missing, i)

			continue
		}

		if score := metric.Compare(query, *s, m); score >= 0.6 {
			expected = append(expected, Candidate{Index: i, Text: *s, Score: score})
		}
	}

	expected.Rank()

	require.Len(t, found, len(expected))

	for i := range expected {
		assert.Equal(t, expected[i].Index, found[i].Index)
		assert.InDelta(t, expected[i].Score, found[i].Score, 1e-12)
	}

	assert.Equal(t, missing, report.Missing)
	assert.Equal(t, len(candidates)-len(missing), report.Scanned)
}

func TestFindAll_Empty(t *testing.T) {
	t.Parallel()

	found, report, err := FindAll(context.Background(), "apple", nil, metric.Levenshtein())
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Zero(t, report.Scanned)
	assert.Empty(t, report.Missing)
}

func TestFindAll_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := FindAll(ctx, "apple", fruits(), metric.Levenshtein())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFindAll_Logs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	_, _, err := FindAll(context.Background(), "apple", fruits(), metric.Levenshtein(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("find all finished").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "Levenshtein", fields["metric"])
	assert.EqualValues(t, 6, fields["candidates"])
	assert.EqualValues(t, 1, fields["matches"])
}

func TestFindNearest(t *testing.T) {
	t.Parallel()

	best, ok, err := FindNearest(context.Background(), "apple pi", fruits(), metric.Levenshtein())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, best.Index)
	assert.Equal(t, "apple pie", best.Text)
}

func TestFindNearest_TieGoesToLowestIndex(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()

			// "apple" and "appel" are both one edit away
			best, ok, err := FindNearest(context.Background(), "appl", fruits(), metric.Levenshtein(), WithWorkers(workers))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, 0, best.Index)
			assert.InDelta(t, 0.8, best.Score, 1e-12)
		})
	}
}

func TestFindNearest_NoMatch(t *testing.T) {
	t.Parallel()

	_, ok, err := FindNearest(context.Background(), "zzz", fruits(), metric.Levenshtein(), WithMinScore(0.5))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = FindNearest(context.Background(), "zzz", []*string{nil, nil}, metric.Levenshtein())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindNearest_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := FindNearest(ctx, "apple", fruits(), metric.Jaro())
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, parts int
		expected []span
	}{
		{0, 4, nil},
		{3, 8, []span{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, []span{{0, 4}, {4, 8}, {8, 10}}},
		{4, 1, []span{{0, 4}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, partition(tt.n, tt.parts), "partition(%d, %d)", tt.n, tt.parts)
	}
}

func BenchmarkFindNearest(b *testing.B) {
	var candidates []*string
	for i := range 10_000 {
		candidates = append(candidates, ptr(fmt.Sprintf("candidate number %d", i)))
	}

	m := metric.Levenshtein()

	for b.Loop() {
		_, _, _ = FindNearest(context.Background(), "candidate number 4242", candidates, m)
	}
}
