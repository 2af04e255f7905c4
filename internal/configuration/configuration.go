// Package configuration reads the application's Unix-type configuration
// files into typed settings.
package configuration

import (
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for configuration reading.
type Handler struct {
	configProvider genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configProvider genericConfigProvider) *Handler {
	return &Handler{
		configProvider: configProvider,
	}
}

// mapKeyToString returns the key's raw value, or the fallback when the key is
// absent or empty.
func mapKeyToString(envMap map[string]string, key string, fallback string) string {
	if value, exists := envMap[key]; exists && value != "" {
		return value
	}

	return fallback
}

// mapKeyToBool returns the key's value parsed as a boolean, or the fallback
// when the key is absent or unparsable.
func mapKeyToBool(envMap map[string]string, key string, fallback bool) bool {
	value, exists := envMap[key]
	if !exists {
		return fallback
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return boolValue
}
