package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadEnv.
const (
	envWidth     = "SAW_WIDTH"
	envHeight    = "SAW_HEIGHT"
	envSeed      = "SAW_SEED"
	envRender    = "SAW_RENDER"
	envPassword  = "SAW_PASSWORD"
	envLogLevel  = "SAW_LOG_LEVEL"
	envLogFormat = "SAW_LOG_FORMAT"
	envFile      = "SAW_ENV_FILE"
)

const defaultEnvFile = ".env"

// Config holds the demo's run parameters.
type Config struct {
	Width, Height int
	Seed          int64 // 0 seeds from system entropy
	Render        bool  // print an ASCII map instead of coordinates
	Password      bool  // also print a password from the default policy
	LogLevel      string
	LogFormat     string // "text" or "json"
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Width: 300, Height: 300, LogLevel: "info", LogFormat: "text"}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so call it after LoadEnv.
func (c *Config) Bind(set *flag.FlagSet) {
	set.IntVar(&c.Width, "width", c.Width, "lattice width")
	set.IntVar(&c.Height, "height", c.Height, "lattice height")
	set.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = entropy)")
	set.BoolVar(&c.Render, "render", c.Render, "draw the walk as ASCII")
	set.BoolVar(&c.Password, "password", c.Password, "also print a random password")
	set.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	set.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

// LoadEnv overrides fields from variables found by lookup.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	var errs []error
	intVar := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = n
		}
	}
	boolVar := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = b
		}
	}

	intVar(envWidth, &c.Width)
	intVar(envHeight, &c.Height)
	if v, ok := lookup(envSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", envSeed, v, err))
		} else {
			c.Seed = n
		}
	}
	boolVar(envRender, &c.Render)
	boolVar(envPassword, &c.Password)
	if v, ok := lookup(envLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(envLogFormat); ok {
		c.LogFormat = v
	}

	return errors.Join(errs...)
}

// Validate rejects values the demo cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("lattice must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

// envLookup returns a lookup that prefers the process environment and falls
// back to values read from the given dotenv files. Missing files are
// skipped; for keys present in several files the first file wins.
func envLookup(files ...string) (func(string) (string, bool), error) {
	fromFiles := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			if _, ok := fromFiles[k]; !ok {
				fromFiles[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	}, nil
}
