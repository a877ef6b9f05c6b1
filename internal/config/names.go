package config

import (
	"context"
	"slices"
	"strings"

	"strdist/match"
	"strdist/metric"
	"strdist/options"
)

// JaroWinklerName is expanded to winkler(jaro) by the defaults pass.
const JaroWinklerName = "jarowinkler"

var aliases = map[string]metric.KindEnum{
	"osa":      metric.KindOptimalStringAlignment,
	"damerau":  metric.KindDamerauLevenshtein,
	"ratcliff": metric.KindRatcliffObershelp,
	"dice":     metric.KindSorensenDice,
}

var kindsByName = func() map[string]metric.KindEnum {
	names := make(map[string]metric.KindEnum, metric.KindTotal+len(aliases))
	for k := range metric.KindEnum(metric.KindTotal) {
		if k.IsValid() {
			names[strings.ToLower(k.String())] = k
		}
	}

	for alias, k := range aliases {
		names[alias] = k
	}

	return names
}()

// canonicalName lowercases name and drops separators, so "Token_Max"
// and "token-max" both read as "tokenmax".
func canonicalName(name string) string {
	return strings.ReplaceAll(match.Fold(name, options.FoldSeparators|options.FoldCase), " ", "")
}

func lookupKind(name string) (metric.KindEnum, bool) {
	k, ok := kindsByName[canonicalName(name)]

	return k, ok
}

// Names lists every accepted metric name, aliases included, sorted.
func Names() []string {
	names := make([]string, 0, len(kindsByName)+1)
	for name := range kindsByName {
		names = append(names, name)
	}

	names = append(names, JaroWinklerName)
	slices.Sort(names)

	return names
}

// suggestName returns the known name closest to an unknown one, if any is
// close enough to be a likely typo.
func suggestName(name string) (string, bool) {
	known := Names()

	candidates := make([]*string, len(known))
	for i := range known {
		candidates[i] = &known[i]
	}

	best, ok, err := match.FindNearest(
		context.Background(),
		canonicalName(name),
		candidates,
		metric.JaroWinkler(),
		match.WithMinScore(match.DefaultMinScore),
		match.WithWorkers(1),
	)
	if err != nil || !ok {
		return "", false
	}

	return best.Text, true
}
