package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/metadata"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "readmecraft.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3700

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default file create writes to.
	DefaultOutput = "README.md"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the complete readmecraft.json configuration.
type Config struct {
	// Defaults are project values used when a flag is not given.
	Defaults Defaults `json:"defaults,omitempty"`

	// TemplatesDir holds <name>.md templates.
	TemplatesDir string `json:"templatesDir,omitempty"`

	// Output is the destination create writes to.
	Output string `json:"output,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Defaults are project metadata defaults.
type Defaults struct {
	Author   string `json:"author,omitempty"`
	License  string `json:"license,omitempty"`
	RepoURL  string `json:"repoUrl,omitempty"`
	Username string `json:"username,omitempty"`
}

// Project returns the defaults as project metadata.
func (d Defaults) Project() metadata.Project {
	return metadata.Project{
		Author:   d.Author,
		License:  d.License,
		RepoURL:  d.RepoURL,
		Username: d.Username,
	}
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: DefaultOutput,
		Preview: PreviewConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the specified directory.
// It looks for readmecraft.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E007").
				WithPath(path).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("E007").WithPath(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E007").
			WithPath(path).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E007").
			WithPath(c.configPath).
			WithDetail("Port must be between 0 and 65535")
	}
	for _, l := range logLevels {
		if strings.EqualFold(c.LogLevel, l) {
			return nil
		}
	}
	return errors.New("E007").
		WithPath(c.configPath).
		WithDetail("Unknown log level '" + c.LogLevel + "'").
		WithSuggestion("Use one of: " + strings.Join(logLevels, ", "))
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// TemplatesPath returns the templates directory resolved against the config
// directory, or "" when none is configured.
func (c *Config) TemplatesPath() string {
	return c.resolve(c.TemplatesDir)
}

// OutputPath returns Output resolved against the config directory. Stdout and
// s3:// destinations are returned unchanged.
func (c *Config) OutputPath() string {
	if c.Output == "-" || strings.HasPrefix(c.Output, "s3://") {
		return c.Output
	}
	return c.resolve(c.Output)
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing readmecraft.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E007").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFrom loads the configuration found from startDir upward. Without a
// configuration file it returns the defaults.
func LoadFrom(startDir string) (*Config, error) {
	root, err := FindProjectRoot(startDir)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

// LoadFromWorkingDir is LoadFrom for the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(wd)
}
