// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps a -v count to a log level: info by default, debug from one -v.
func Level(verbosity int) zapcore.Level {
	if verbosity > 0 {
		return zap.DebugLevel
	}

	return zap.InfoLevel
}

// New returns a logger writing to w, human readable unless jsonOutput.
func New(w io.Writer, verbosity int, jsonOutput bool) *zap.Logger {
	var encoder zapcore.Encoder

	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), Level(verbosity)))
}
