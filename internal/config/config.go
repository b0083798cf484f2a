// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tiwariParth/go-task-cli/internal/logging"
	"github.com/tiwariParth/go-task-cli/internal/storage/file"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceFile    ConfigSource = "config file"
	SourceEnv     ConfigSource = "environment"
	SourceFlag    ConfigSource = "flag"
)

// Default values.
const (
	DefaultConfigFile = ".task.toml"
	DefaultFile       = file.DefaultPath
	DefaultLogLevel   = logging.DefaultLevel
	DefaultLogFormat  = logging.DefaultFormat
)

// Environment variables.
const (
	EnvConfig    = "TASK_CONFIG"
	EnvFile      = "TASK_FILE"
	EnvLogLevel  = "TASK_LOG_LEVEL"
	EnvLogFormat = "TASK_LOG_FORMAT"
)

// Config holds the full configuration for the task CLI.
type Config struct {
	// Storage file, relative to the working directory unless absolute
	File string `toml:"file"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Sources records where each field was last set from, keyed by TOML name.
	Sources map[string]ConfigSource `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:      DefaultFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources: map[string]ConfigSource{
			"file":       SourceDefault,
			"log_level":  SourceDefault,
			"log_format": SourceDefault,
		},
	}
}

// Load builds a configuration from defaults, the config file and the environment.
//
// path names the config file. When empty, TASK_CONFIG is consulted, then
// DefaultConfigFile. Only the implicit default may be missing.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := getenv(EnvConfig); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultConfigFile
		}
	}

	if err := cfg.loadFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg.ApplyEnv(getenv)
			return cfg, nil
		}
		return nil, err
	}

	cfg.ApplyEnv(getenv)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var fileCfg Config
	md, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("file") {
		c.set("file", &c.File, fileCfg.File, SourceFile)
	}
	if md.IsDefined("log_level") {
		c.set("log_level", &c.LogLevel, fileCfg.LogLevel, SourceFile)
	}
	if md.IsDefined("log_format") {
		c.set("log_format", &c.LogFormat, fileCfg.LogFormat, SourceFile)
	}
	return nil
}

// ApplyEnv overrides fields from TASK_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvFile); v != "" {
		c.set("file", &c.File, v, SourceEnv)
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.set("log_level", &c.LogLevel, v, SourceEnv)
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.set("log_format", &c.LogFormat, v, SourceEnv)
	}
}

// SetFlag overrides a field from a command-line flag. name is the TOML key.
func (c *Config) SetFlag(name, value string) error {
	switch name {
	case "file":
		c.set(name, &c.File, value, SourceFlag)
	case "log_level":
		c.set(name, &c.LogLevel, value, SourceFlag)
	case "log_format":
		c.set(name, &c.LogFormat, value, SourceFlag)
	default:
		return fmt.Errorf("unknown config key %q", name)
	}
	return nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("storage file path is empty")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

func (c *Config) set(key string, field *string, value string, src ConfigSource) {
	*field = value
	if c.Sources == nil {
		c.Sources = make(map[string]ConfigSource)
	}
	c.Sources[key] = src
}
