// Package config loads the settings of a fleetintake run.
//
// Values come from three layers, each overriding the previous one: built-in
// defaults, an optional YAML file, and FLEETINTAKE_* environment variables.
// Command-line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/fleetintake/pkg/adapters/file"
	"github.com/aretw0/fleetintake/pkg/adapters/redis"
	"github.com/aretw0/fleetintake/pkg/matcher"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "fleetintake.yaml"

// Record stores.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// EnvPrefix starts every environment variable read by Load.
const EnvPrefix = "FLEETINTAKE_"

var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of a run.
type Config struct {
	BrandsFile     string `yaml:"brands_file"`
	DataFile       string `yaml:"data_file"`
	LogDir         string `yaml:"log_dir"`
	Store          string `yaml:"store"`
	Redis          Redis  `yaml:"redis"`
	MetricsAddr    string `yaml:"metrics_addr"`
	MatchThreshold int    `yaml:"match_threshold"`
}

// Redis configures the redis record store.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BrandsFile:     file.DefaultBrandsFile,
		DataFile:       file.DefaultDataFile,
		LogDir:         ".",
		Store:          StoreFile,
		Redis:          Redis{Addr: "localhost:6379", Key: redis.DefaultKey},
		MatchThreshold: matcher.DefaultThreshold,
	}
}

// Load reads path over the defaults and applies the environment. A missing
// file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !required:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from FLEETINTAKE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"BRANDS_FILE":    &c.BrandsFile,
		"DATA_FILE":      &c.DataFile,
		"LOG_DIR":        &c.LogDir,
		"STORE":          &c.Store,
		"REDIS_ADDR":     &c.Redis.Addr,
		"REDIS_PASSWORD": &c.Redis.Password,
		"REDIS_KEY":      &c.Redis.Key,
		"METRICS_ADDR":   &c.MetricsAddr,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REDIS_DB":        &c.Redis.DB,
		"MATCH_THRESHOLD": &c.MatchThreshold,
	}
	for name, dst := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = n
	}
	return nil
}

// Validate checks that the settings can be used together.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.DataFile == "" {
			return fmt.Errorf("%w: data_file is required for the file store", ErrInvalid)
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for the redis store", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalid, c.Store)
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 99 {
		return fmt.Errorf("%w: match_threshold must be in [0,99], got %d", ErrInvalid, c.MatchThreshold)
	}
	if c.BrandsFile == "" {
		return fmt.Errorf("%w: brands_file is required", ErrInvalid)
	}
	return nil
}
