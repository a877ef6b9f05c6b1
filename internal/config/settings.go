package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"strdist/internal/diagnostic"
	"strdist/match"
	"strdist/metric"
	"strdist/options"
	"strdist/utils"
)

// EnvPrefix prefixes the environment variables read by NewViper.
const EnvPrefix = "STRDIST"

// Setting keys.
const (
	KeyMetric   = "metric"
	KeyConfig   = "config"
	KeyMinScore = "min_score"
	KeyWorkers  = "workers"
	KeyFold     = "fold"
)

// Settings holds the CLI settings.
type Settings struct {
	// Metric is a short form descriptor, used when Config is empty.
	Metric string `mapstructure:"metric"`
	// Config is the path of a YAML descriptor file.
	Config string `mapstructure:"config"`
	// MinScore is the scan threshold; meaningful only when HasMinScore.
	MinScore    float64 `mapstructure:"min_score"`
	HasMinScore bool    `mapstructure:"-"`
	Workers     int     `mapstructure:"workers"`
	Fold        string  `mapstructure:"fold"`
}

// SetDefaults configures default values for all settings.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMetric, "tokenmax(levenshtein)")
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyFold, "none")
}

// NewViper returns a viper instance with defaults set and STRDIST_*
// environment variables bound.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// min_score has no default, so bind it explicitly for Unmarshal to see it
	_ = v.BindEnv(KeyMinScore)

	SetDefaults(v)

	return v
}

// LoadSettings reads and checks the settings held by v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "failed to unmarshal settings")
	}

	s.HasMinScore = v.IsSet(KeyMinScore)

	if s.HasMinScore && !utils.IsInRange(0, s.MinScore, 1) {
		return Settings{}, errors.WithHint(
			errors.Newf("%s must be in [0, 1], got %v", KeyMinScore, s.MinScore),
			"similarities range from 0 (unrelated) to 1 (identical)",
		)
	}

	if s.Workers < 0 {
		return Settings{}, errors.Newf("%s must not be negative, got %d", KeyWorkers, s.Workers)
	}

	if _, err := options.ParseFold(s.Fold); err != nil {
		return Settings{}, errors.Wrapf(err, "invalid %s", KeyFold)
	}

	return s, nil
}

// Descriptor returns the configured descriptor with defaults applied.
func (s Settings) Descriptor() (*Descriptor, error) {
	if s.Config != "" {
		return LoadFile(s.Config)
	}

	d, err := ParseExpr(s.Metric)
	if err != nil {
		return nil, err
	}

	applyDefaults(d)

	return d, nil
}

// BuildMetric loads, checks and builds the configured metric. The returned
// diagnostics hold the warnings of a successful build.
func (s Settings) BuildMetric() (metric.Metric, *diagnostic.Diagnostics, error) {
	d, err := s.Descriptor()
	if err != nil {
		return nil, nil, err
	}

	diags := Validate(d)
	if err := diags.Error(); err != nil {
		return nil, diags, errors.Wrapf(err, "invalid metric %s", d)
	}

	m, err := Build(d)
	if err != nil {
		return nil, diags, err
	}

	return m, diags, nil
}

// ScanOptions translates the settings into match options. defaultMinScore
// applies when no minimum score was set.
func (s Settings) ScanOptions(logger *zap.Logger, defaultMinScore float64) ([]match.Option, error) {
	fold, err := options.ParseFold(s.Fold)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyFold)
	}

	minScore := defaultMinScore
	if s.HasMinScore {
		minScore = s.MinScore
	}

	return []match.Option{
		match.WithMinScore(minScore),
		match.WithWorkers(s.Workers),
		match.WithFold(fold),
		match.WithLogger(logger),
	}, nil
}
