package cli

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ruboto-labs/ruboto/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
// Terminal output is reserved for command results.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = config.Get(config.KeyLogFilename)
	}
	if strings.TrimSpace(logPath) == "" {
		logPath = config.LogFilePath()
	}

	level := parseSlogLevel(config.Get(config.KeyLogLevel), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.GetInt(config.KeyLogMaxSize),
		MaxBackups: config.GetInt(config.KeyLogMaxBackups),
		MaxAge:     config.GetInt(config.KeyLogMaxAge),
		Compress:   config.GetBool(config.KeyLogCompress),
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     level,
	})
	slog.SetDefault(slog.New(handler))
}
