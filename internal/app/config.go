package app

import (
	"os"
	"strings"

	"textpad/internal/debug"
	"textpad/internal/debug/logger"
)

// Settings are read once at startup from the environment.
type Settings struct {
	Debug         debug.Config
	NativeDialogs bool
}

func LoadSettings() Settings {
	return settingsFrom(os.LookupEnv)
}

func settingsFrom(lookup func(string) (string, bool)) Settings {
	return Settings{
		Debug:         debugConfigFrom(lookup),
		NativeDialogs: enabled(lookup, "TEXTPAD_NATIVE_DIALOGS"),
	}
}

func debugConfigFrom(lookup func(string) (string, bool)) debug.Config {
	if enabled(lookup, "TEXTPAD_PRODUCTION") {
		return debug.ProductionConfig()
	}

	config := debug.DefaultConfig()

	if level, ok := lookup("TEXTPAD_LOG_LEVEL"); ok {
		config.LogLevel = int(logger.ParseLevel(level))
	}

	if enabled(lookup, "TEXTPAD_JSON_LOGS") {
		config.UseJSONLogging = true
	}

	if value, ok := lookup("TEXTPAD_DEBUG_FILES"); ok {
		config.EnableFileTracking = isTrue(value)
	}

	return config
}

func enabled(lookup func(string) (string, bool), name string) bool {
	value, ok := lookup(name)
	return ok && isTrue(value)
}

func isTrue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
