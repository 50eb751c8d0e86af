package logger

import "time"

const defaultTimestampFormat = time.RFC3339

// Config provides configuration for a logger.
type Config struct {
	Level      string
	Formatter  string
	OutputFile string
	TextFormat TextFormatConfig
	JSONFormat JSONFormatConfig
}

// TextFormatConfig provides configuration for the text formatter.
type TextFormatConfig struct {
	ForceColors      bool
	DisableColors    bool
	DisableTimestamp bool
	FullTimestamp    bool
	DisableSorting   bool
	TimestampFormat  string
	Indent           string
}

// JSONFormatConfig provides configuration for the JSON formatter.
type JSONFormatConfig struct {
	DisableTimestamp bool
	TimestampFormat  string
}

// DefaultConfig returns a Config instance with default values.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Formatter: "text",
		TextFormat: TextFormatConfig{
			FullTimestamp:   true,
			TimestampFormat: defaultTimestampFormat,
		},
	}
}

// DebugConfig returns a Config instance with values useful for testing and debugging.
func DebugConfig() Config {
	c := DefaultConfig()
	c.Level = "debug"
	c.TextFormat.ForceColors = true
	return c
}
