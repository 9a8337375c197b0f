package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/canonlog/middleware"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound     = errors.New("config: file not found")
	ErrPermissionDenied = errors.New("config: permission denied")
	ErrEmptyFile        = errors.New("config: file is empty")
	ErrInvalidYAML      = errors.New("config: invalid YAML")
	ErrInvalidValue     = errors.New("config: invalid value")
)

// Output destinations
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Backends
const (
	BackendHandler = "handler"
	BackendSlog    = "slog"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// Middleware modes
const (
	ModeCanonical = "canonical"
	ModeEntries   = "entries"
)

var levelNames = []string{
	"trace", "debug", "info", "information", "warn", "warning",
	"error", "critical", "fatal", "none", "off",
}

// Config is the root configuration
type Config struct {
	Level         string           `yaml:"level"`
	Format        string           `yaml:"format"`
	Output        string           `yaml:"output"`
	IncludeCaller bool             `yaml:"include_caller"`
	File          FileConfig       `yaml:"file"`
	Backend       string           `yaml:"backend"`
	Middleware    MiddlewareConfig `yaml:"middleware"`
}

// FileConfig configures the file output
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// MiddlewareConfig configures the request hook
type MiddlewareConfig struct {
	// Mode is "canonical" for one merged line per request or "entries"
	// for one line per captured entry.
	Mode            string   `yaml:"mode"`
	Message         string   `yaml:"message"`
	Category        string   `yaml:"category"`
	RequestIDHeader string   `yaml:"request_id_header"`
	ExcludePaths    []string `yaml:"exclude_paths"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Level:   "info",
		Format:  FormatText,
		Output:  OutputStdout,
		Backend: BackendHandler,
		Middleware: MiddlewareConfig{
			Mode:            ModeCanonical,
			Message:         middleware.DefaultCanonicalMessage,
			Category:        middleware.DefaultCanonicalCategory,
			RequestIDHeader: middleware.DefaultRequestIDHeader,
		},
	}
}

// Load reads, expands and validates the configuration file at path.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case os.IsPermission(err):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		default:
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return Parse(data)
}

// Parse expands environment variables in data, decodes it over Default
// and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(ExpandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Middleware.Mode = strings.ToLower(strings.TrimSpace(c.Middleware.Mode))
}

// Validate checks every enumerated value and the file settings
func (c *Config) Validate() error {
	if !slices.Contains(levelNames, c.Level) {
		return fmt.Errorf("%w: level %q", ErrInvalidValue, c.Level)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q", ErrInvalidValue, c.Format)
	}
	switch c.Output {
	case OutputStdout, OutputStderr:
	case OutputFile:
		if c.File.Path == "" {
			return fmt.Errorf("%w: file.path is required for file output", ErrInvalidValue)
		}
		if c.File.MaxSizeMB < 0 || c.File.MaxBackups < 0 {
			return fmt.Errorf("%w: file limits must not be negative", ErrInvalidValue)
		}
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidValue, c.Output)
	}
	switch c.Backend {
	case BackendHandler, BackendSlog, BackendZap, BackendZerolog, BackendLogrus:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalidValue, c.Backend)
	}
	if c.Middleware.Mode != ModeCanonical && c.Middleware.Mode != ModeEntries {
		return fmt.Errorf("%w: middleware.mode %q", ErrInvalidValue, c.Middleware.Mode)
	}
	return nil
}

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// ExpandEnvVars replaces ${VAR} and ${VAR:-default} with the variable's
// value, or the default when the variable is unset or empty.
func ExpandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		if val := os.Getenv(sub[1]); val != "" {
			return val
		}
		return sub[2]
	})
}
