package configuration

import (
	"errors"
	"io/fs"
	"log/slog"
)

// Configuration file keys.
const (
	// KeyInputFile names a document file to decode instead of the kernel.
	KeyInputFile = "GEOMESH_FILE"

	// KeyUIEnabled toggles the interactive topology browser.
	KeyUIEnabled = "GEOMESH_UI"

	// KeyLogLevel sets the minimum log level ("debug", "info", "warn",
	// "error").
	KeyLogLevel = "GEOMESH_LOG_LEVEL"
)

// Settings is the principal structure holding the application configuration.
type Settings struct {
	// InputFile is a document file to decode instead of reading the running
	// kernel; empty means live kernel state.
	InputFile string

	// UIEnabled launches the interactive topology browser instead of
	// rendering to standard output.
	UIEnabled bool

	// LogLevel is the minimum level for emitted logs.
	LogLevel slog.Level
}

// defaultSettings returns the settings used when no configuration file
// exists.
func defaultSettings() *Settings {
	return &Settings{
		InputFile: "",
		UIEnabled: false,
		LogLevel:  slog.LevelInfo,
	}
}

// LoadSettings reads the application settings from the given configuration
// file. A missing file is not an error; defaults apply for it, and for any
// key the file does not set.
func (c *Handler) LoadSettings(filename string) (*Settings, error) {
	settings := defaultSettings()

	envMap, err := c.configProvider.Read(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return nil, err
	}

	settings.InputFile = mapKeyToString(envMap, KeyInputFile, settings.InputFile)
	settings.UIEnabled = mapKeyToBool(envMap, KeyUIEnabled, settings.UIEnabled)
	settings.LogLevel = parseLogLevel(mapKeyToString(envMap, KeyLogLevel, ""), settings.LogLevel)

	return settings, nil
}

// parseLogLevel maps a configuration value to a [slog.Level], falling back
// when the value names no known level.
func parseLogLevel(value string, fallback slog.Level) slog.Level {
	switch value {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
