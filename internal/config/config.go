// Package config loads aoc CLI settings from defaults, a TOML file and the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/colthorp/aocdata/internal/core"
)

// Config represents the application configuration
type Config struct {
	CacheDir    string        `koanf:"cache_dir"`
	BaseURL     string        `koanf:"base_url"`
	UserAgent   string        `koanf:"user_agent"`
	Timeout     time.Duration `koanf:"timeout"`
	MinInterval time.Duration `koanf:"min_interval"`
	Year        string        `koanf:"year"`
	LogLevel    string        `koanf:"log_level"`
}

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// DefaultPaths are tried in order when no explicit config path is given.
var DefaultPaths = []string{"./aocdata.toml", "$HOME/.config/aocdata/config.toml"}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"cache_dir":    core.DefaultCacheDir,
		"base_url":     core.ServiceBaseURL,
		"user_agent":   core.DefaultUserAgent,
		"timeout":      fmt.Sprintf("%ds", core.DefaultTimeoutSeconds),
		"min_interval": fmt.Sprintf("%ds", core.DefaultMinIntervalSeconds),
		"year":         "",
		"log_level":    "info",
	}
}

// Load loads the configuration. An explicit configPath must exist; otherwise
// the first existing default path is used, if any, and must parse.
// AOCDATA_* variables override file values (AOCDATA_CACHE_DIR -> cache_dir).
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range DefaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config %s: %w", path, err)
			}
			break
		}
	}

	if err := k.Load(env.Provider(core.ConfigEnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, core.ConfigEnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.CacheDir == "" {
		return fmt.Errorf("cache_dir is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got '%s'", cfg.BaseURL)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if cfg.MinInterval < 0 {
		return fmt.Errorf("min_interval must not be negative")
	}

	if cfg.Year != "" && !yearRegex.MatchString(cfg.Year) {
		return fmt.Errorf("year must be four digits, got '%s'", cfg.Year)
	}

	return nil
}

// Sample is written by `aoc config init`.
const Sample = `# aocdata configuration

cache_dir = "cached_data"
base_url = "https://adventofcode.com"
timeout = "30s"
min_interval = "3s"

# Pick a year when several AOC_<YYYY>_SESSION_ID variables are set.
# year = "2025"

log_level = "info"
`

// Init writes a sample configuration file.
func Init(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}
	return os.WriteFile(configPath, []byte(Sample), 0644)
}
