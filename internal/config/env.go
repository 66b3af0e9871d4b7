package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvURL       = "USERTABLE_URL"
	EnvFile      = "USERTABLE_FILE"
	EnvTimeout   = "USERTABLE_TIMEOUT"
	EnvPageSize  = "USERTABLE_PAGE_SIZE"
	EnvOutput    = "USERTABLE_OUTPUT"
	EnvLogLevel  = "USERTABLE_LOG_LEVEL"
	EnvLogFormat = "USERTABLE_LOG_FORMAT"
	EnvLogFile   = "USERTABLE_LOG_FILE"
	EnvLogCaller = "USERTABLE_LOG_CALLER"
)

// ApplyEnv overrides fields from environment variables found via lookupEnv.
// Setting a URL clears a configured file and vice versa.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvURL); ok && v != "" {
		c.Source.URL = v
		c.Source.File = ""
	}
	if v, ok := lookupEnv(EnvFile); ok && v != "" {
		c.Source.File = v
		c.Source.URL = ""
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.Source.Timeout = d
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPageSize, v, err)
		}
		c.View.PageSize = n
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		c.Output.Format = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvLogCaller); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLogCaller, v, err)
		}
		c.Logging.Caller = b
	}
	return nil
}
