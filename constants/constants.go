package constants

import "os"

const AppName = "quartal"

// EnvPrefix is prepended to every configuration key read from the environment,
// e.g. QUARTAL_LOG_LEVEL.
const EnvPrefix = "QUARTAL"

const (
	MinChordSize = 2
	MaxChordSize = 5
)

const (
	DefaultRoot      = "C4"
	DefaultSize      = 4
	DefaultUnit      = "quartal"
	DefaultMode      = "standard"
	DefaultOutput    = "table"
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// GetConfigPath returns the config file named by QUARTAL_CONFIG, or "" to
// fall back to the search path.
func GetConfigPath() string {
	return os.Getenv(EnvPrefix + "_CONFIG")
}
