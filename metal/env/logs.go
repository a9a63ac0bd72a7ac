package env

import "log/slog"

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"required,contains=%s"`
	DateFormat string `validate:"required"`
}

func (e LogsEnvironment) GetLevel() slog.Level {
	switch e.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
