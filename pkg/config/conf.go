package config

import (
	"io"
	"os"

	"github.com/mchmarny/gradebook/pkg/data"
	"github.com/mchmarny/gradebook/pkg/report"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents app config object.
type Config struct {
	InputFile   string `yaml:"input_file"`
	MaxStudents int    `yaml:"max_students"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	NoColor     bool   `yaml:"no_color"`
}

// Default returns the config used when no file or flags override it.
func Default() *Config {
	return &Config{
		InputFile:   data.DefaultFileName,
		MaxStudents: data.DefaultMaxStudents,
		Format:      report.FormatTable,
		LogLevel:    "info",
	}
}

// Load reads the YAML config at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening config file: %s", path)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file: %s", path)
	}
	return c, nil
}

// Validate checks the values and normalizes the output format.
func (c *Config) Validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalidConfig, "config required")
	}
	if c.InputFile == "" {
		return errors.Wrap(ErrInvalidConfig, "input file required")
	}
	if c.MaxStudents <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max students must be positive, got %d", c.MaxStudents)
	}

	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	c.Format = f
	return nil
}
