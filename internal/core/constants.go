// Package core provides shared constants, day parsing and error kinds for the aoc CLI.
package core

// Puzzle service configuration
const (
	ServiceBaseURL   = "https://adventofcode.com"
	DefaultUserAgent = "github.com/colthorp/aocdata"
)

// Session credential naming: AOC_<YYYY>_SESSION_ID
const (
	SessionEnvPrefix  = "AOC_"
	SessionEnvSuffix  = "_SESSION_ID"
	SessionEnvExample = "AOC_2025_SESSION_ID"
	SessionCookieName = "session"
)

// Local cache layout
const (
	DefaultCacheDir = "cached_data"
	CacheFilePrefix = "day"
	CacheFileExt    = ".txt"
)

// UserVarianceSentinel is served instead of an input when the session does
// not belong to the user the input was generated for. A cached file holding
// it is never valid input.
const UserVarianceSentinel = "Puzzle inputs differ by user"

// Request pacing defaults
const (
	DefaultTimeoutSeconds     = 30
	DefaultMinIntervalSeconds = 3
)

// ConfigEnvPrefix is the prefix for configuration overrides. It is distinct
// from SessionEnvPrefix so config keys never look like credentials.
const ConfigEnvPrefix = "AOCDATA_"

// Version is the current CLI version.
const Version = "0.3.0"
