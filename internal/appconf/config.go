package appconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value onto an Environment. Unknown values are
// treated as development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) MarshalYAML() (any, error) {
	return e.String(), nil
}

func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*e = EnvFlagToEnvironment(s)
	return nil
}

// Config holds all the configuration settings for the server.
type Config struct {
	Port    int         `yaml:"port"`
	Env     Environment `yaml:"env"`
	ApiKeys []string    `yaml:"api_keys"`
	// RateLimit is the number of requests per second allowed per API key.
	RateLimit int `yaml:"rate_limit"`
	// ReportDBPath is the SQLite file problem reports are stored in. ":memory:" keeps them in
	// process.
	ReportDBPath string `yaml:"report_db_path"`
	// CatalogPath optionally replaces the built-in unit catalog with a YAML file.
	CatalogPath string            `yaml:"catalog_path"`
	Compression CompressionConfig `yaml:"compression"`
}

type CompressionConfig struct {
	MinSize int `yaml:"min_size"`
	Level   int `yaml:"level"`
}

// Defaults returns the configuration used when no file or flag overrides a value.
func Defaults() Config {
	return Config{
		Port:         4000,
		Env:          Development,
		ApiKeys:      []string{"test"},
		RateLimit:    100,
		ReportDBPath: "easyconvert.db",
		Compression: CompressionConfig{
			MinSize: 1024,
			Level:   6,
		},
	}
}

// Load reads a YAML config file over Defaults. Relative paths in the file are resolved
// against the file's directory.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to resolve config path: %w", err)
	}
	baseDir := filepath.Dir(absPath)
	cfg.ReportDBPath = resolvePath(baseDir, cfg.ReportDBPath)
	cfg.CatalogPath = resolvePath(baseDir, cfg.CatalogPath)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Validate reports the first setting that cannot be used to start the server.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be non-negative, got %d", c.RateLimit)
	}
	if c.Compression.Level < 1 || c.Compression.Level > 9 {
		return fmt.Errorf("compression level must be between 1 and 9, got %d", c.Compression.Level)
	}
	if c.Env == Test && c.ReportDBPath != ":memory:" {
		return fmt.Errorf("test environment requires an in-memory report database, got %q", c.ReportDBPath)
	}
	return nil
}

// ParseAPIKeys splits the comma separated -api-keys flag value.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, k := range strings.Split(flagValue, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
