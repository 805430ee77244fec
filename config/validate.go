package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/quartal/constants"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"auto", "console", "json"}
	validOutputs = []string{"table", "plain", "json"}
)

// Validate checks fields that have a closed set of values. Chord defaults
// are checked when they are parsed, where the error names the bad value.
func (c *Config) Validate() error {
	var errs []error
	if !oneOf(c.Log.Level, validLevels) {
		errs = append(errs, fmt.Errorf("log.level: unsupported value %q", c.Log.Level))
	}
	if !oneOf(c.Log.Format, validFormats) {
		errs = append(errs, fmt.Errorf("log.format: unsupported value %q", c.Log.Format))
	}
	if !oneOf(c.Output, validOutputs) {
		errs = append(errs, fmt.Errorf("output: unsupported value %q", c.Output))
	}
	if c.Defaults.Size < constants.MinChordSize || c.Defaults.Size > constants.MaxChordSize {
		errs = append(errs, fmt.Errorf("defaults.size: %d outside [%d,%d]",
			c.Defaults.Size, constants.MinChordSize, constants.MaxChordSize))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr: must not be empty"))
	}
	return errors.Join(errs...)
}

func oneOf(s string, options []string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
