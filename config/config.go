// Package config loads the settings of the Orx manifest compiler.
//
// Settings are layered; later layers win:
//
//	defaults  <  YAML config file  <  ORX_* environment  <  command line flags
//
// Flags are applied by the command line tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables, e.g. ORX_OUT_DIR for key out_dir.
const EnvPrefix = "ORX_"

// Config holds the settings for building a manifest.
type Config struct {
	Manifest   string `koanf:"manifest" validate:"required"`                  // location of the manifest tree
	Pattern    string `koanf:"pattern" validate:"required"`                   // glob selecting Orx documents
	OutDir     string `koanf:"out_dir" validate:"required"`                   // destination directory
	OutFile    string `koanf:"out_file" validate:"required"`                  // destination file name
	Format     string `koanf:"format" validate:"oneof=json yaml"`             // output format
	Lenient    bool   `koanf:"lenient"`                                       // substitute missing emoji codes
	Workers    int    `koanf:"workers" validate:"min=1,max=256"`              // parallel document parsers
	TraceLevel string `koanf:"trace_level" validate:"oneof=Debug Info Error"` // tracing level
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Manifest:   "./manifest",
		Pattern:    "**/*.orx",
		OutDir:     "out",
		OutFile:    "orx.json",
		Format:     "json",
		Lenient:    false,
		Workers:    4,
		TraceLevel: "Info",
	}
}

// Loader loads configurations.
type Loader struct {
	k        *koanf.Koanf
	validate *validator.Validate
	environ  func() []string
}

// NewLoader creates a configuration loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{
		k:        koanf.New("."),
		validate: validator.New(),
		environ:  os.Environ,
	}
}

// Load loads the configuration. path names an optional YAML config file; it is
// skipped if empty.
func (l *Loader) Load(path string) (*Config, error) {
	l.k = koanf.New(".")
	if err := l.k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path != "" {
		if err := l.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}
	var c Config
	if err := l.k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := l.Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks a configuration.
func (l *Loader) Validate(c *Config) error {
	if err := l.validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func (l *Loader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := l.k.Load(rawMap(m), nil); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}

func (l *Loader) loadEnvironment() error {
	if err := l.k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
		EnvironFunc:   l.environ,
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}
	return nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: ORX_OUT_DIR -> out_dir
func transformEnvKey(key string, value string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}
