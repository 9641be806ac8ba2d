package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"smoke-env/internal/dotenv"
	"smoke-env/internal/log"
)

// FileConfig represents the configuration file structure
type FileConfig struct {
	EnvFile     string `yaml:"env_file"`
	BaseURL     string `yaml:"base_url"`
	TokenVar    string `yaml:"token_var"`
	PortVar     string `yaml:"port_var"`
	DefaultPort string `yaml:"default_port"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// DotenvName is the env file looked up when none is configured.
const DotenvName = ".env"

// configFileNames lists the supported config file names in priority order
var configFileNames = []string{
	".smoke-env.yaml",
	".smoke-env.yml",
}

// LoadFile loads configuration from a YAML file
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// FindConfigFile looks for a config file in dir and its ancestors. The
// nearest directory wins; within one directory, names keep priority order.
// Returns the path if found, empty string if not found
func FindConfigFile(dir string) string {
	best := ""
	for _, name := range configFileNames {
		path, ok := dotenv.FindUpwards(dir, name)
		if !ok {
			continue
		}
		if best == "" || len(filepath.Dir(path)) > len(filepath.Dir(best)) {
			best = path
		}
	}
	return best
}

// Validate reports every invalid field at once.
func (c *FileConfig) Validate() error {
	var merr error

	if _, err := log.GetLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, err)
	}
	if _, err := log.CreateHandler(io.Discard, "", c.LogFormat); err != nil {
		merr = multierror.Append(merr, err)
	}
	if c.DefaultPort != "" {
		if _, err := strconv.ParseUint(c.DefaultPort, 10, 16); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("default_port %q is not a port number", c.DefaultPort))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, merr)
	}
	return nil
}

// ErrInvalid marks a config that failed validation.
var ErrInvalid = errors.New("invalid config")

// Merge returns a copy of c with every non-empty field of override applied.
func (c *FileConfig) Merge(override *FileConfig) *FileConfig {
	out := *c
	if override == nil {
		return &out
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&out.EnvFile, override.EnvFile)
	set(&out.BaseURL, override.BaseURL)
	set(&out.TokenVar, override.TokenVar)
	set(&out.PortVar, override.PortVar)
	set(&out.DefaultPort, override.DefaultPort)
	set(&out.LogLevel, override.LogLevel)
	set(&out.LogFormat, override.LogFormat)
	return &out
}
