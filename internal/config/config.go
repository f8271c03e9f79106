// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/mask-cutout/internal/cutout"
	"github.com/ironsheep/mask-cutout/internal/fetch"
)

// Config is the process configuration shared by the binaries.
type Config struct {
	// Addr is the listen address of the HTTP service.
	Addr string

	UserAgent     string
	FetchTimeout  time.Duration
	MaxImageBytes int64

	// Debug enables per-request stage timings in the logs.
	Debug bool

	// Settings are the pipeline defaults; requests may override them.
	Settings cutout.Settings
}

// Load reads the CUTOUT_* environment variables. Unset variables take their
// defaults. Unparsable values and invalid pipeline settings are errors.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, defaultVal string) string {
		if val := getenv(key); val != "" {
			return val
		}
		return defaultVal
	}

	cfg := &Config{
		Addr:      env("CUTOUT_ADDR", ":8080"),
		UserAgent: env("CUTOUT_USER_AGENT", fetch.DefaultUserAgent),
		Debug:     strings.EqualFold(env("CUTOUT_LOG_LEVEL", "info"), "debug"),
		Settings:  cutout.DefaultSettings(),
	}

	var err error
	if cfg.FetchTimeout, err = time.ParseDuration(env("CUTOUT_FETCH_TIMEOUT", fetch.DefaultTimeout.String())); err != nil {
		return nil, fmt.Errorf("CUTOUT_FETCH_TIMEOUT: %w", err)
	}
	if cfg.MaxImageBytes, err = strconv.ParseInt(env("CUTOUT_MAX_IMAGE_BYTES", strconv.Itoa(fetch.DefaultMaxBytes)), 10, 64); err != nil {
		return nil, fmt.Errorf("CUTOUT_MAX_IMAGE_BYTES: %w", err)
	}

	s := &cfg.Settings
	s.Strategy = env("CUTOUT_STRATEGY", s.Strategy)
	s.Resample = env("CUTOUT_RESAMPLE", s.Resample)
	ints := []struct {
		key string
		dst *int
	}{
		{"CUTOUT_RED_THRESH", &s.RedThresh},
		{"CUTOUT_GREEN_THRESH", &s.GreenThresh},
		{"CUTOUT_BLUE_THRESH", &s.BlueThresh},
		{"CUTOUT_DIFF_THRESH", &s.DiffThresh},
		{"CUTOUT_KERNEL_SIZE", &s.KernelSize},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if _, err := cfg.Settings.Options(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FetchOptions returns the download settings for fetch.NewClient.
func (c *Config) FetchOptions() fetch.Options {
	return fetch.Options{
		Header:   map[string]string{"User-Agent": c.UserAgent},
		Timeout:  c.FetchTimeout,
		MaxBytes: c.MaxImageBytes,
	}
}
