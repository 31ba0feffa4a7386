package app

import (
	"io"
	"log/slog"
)

// logLevels are the accepted values of Config.LogLevel.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger creates a slog.Logger writing to outW. It does not set the
// global logger, allowing for isolated logger instances. cfg must have
// passed NewConfig.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: logLevels[cfg.LogLevel]}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
