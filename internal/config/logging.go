package config

import (
	"github.com/rshade/usertable/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	// Caller adds the source file and line to each entry.
	Caller bool `yaml:"caller"`
}

// Validate checks the log format.
func (lc LoggingConfig) Validate() error {
	if lc.Format != logging.FormatJSON && lc.Format != logging.FormatConsole {
		return ErrInvalidLogFmt
	}
	return nil
}

// ToLoggingConfig converts the file section to a logging.Config.
//   - Level and Format are copied directly
//   - a configured File selects file output, otherwise stderr
//   - Caller is copied directly
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}
