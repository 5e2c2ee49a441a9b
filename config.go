package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ziyixi/todoview/client"
	"github.com/ziyixi/todoview/utils"
)

const minMaxWidth = 40

// Config holds all configuration parameters
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	Language  string        `yaml:"language"`
	MaxWidth  int           `yaml:"max_width"`
	NoColor   bool          `yaml:"no_color"`
	LogFile   string        `yaml:"log_file"`
	LogLevel  string        `yaml:"log_level"`
	DebugHTTP bool          `yaml:"debug_http"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  client.DefaultBaseURL,
		Timeout:  client.DefaultTimeout,
		Language: utils.DefaultLanguage,
		MaxWidth: 64,
		LogFile:  "todoview.log",
		LogLevel: "info",
	}
}

// loadFile overlays the YAML file at path onto c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first setting the program cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base url %q: must be an absolute http or https url", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxWidth < minMaxWidth {
		return fmt.Errorf("max width must be at least %d, got %d", minMaxWidth, c.MaxWidth)
	}
	if _, err := utils.ParseLanguage(c.Language); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// flagOptions are the flags that are not part of Config.
type flagOptions struct {
	ConfigPath  string
	ShowVersion bool
}

// parseConfig builds the configuration from defaults, then the --config
// file, then every flag set explicitly on the command line.
func parseConfig(args []string) (*Config, flagOptions, error) {
	var opts flagOptions
	flagged := DefaultConfig()

	fs := flag.NewFlagSet("todoview", flag.ContinueOnError)
	fs.StringVar(&flagged.BaseURL, "base-url", flagged.BaseURL, "Base URL of the task service")
	fs.DurationVar(&flagged.Timeout, "timeout", flagged.Timeout, "Timeout of a single request to the task service")
	fs.StringVar(&flagged.Language, "lang", flagged.Language, "Language of the interface (en, pt-BR)")
	fs.IntVar(&flagged.MaxWidth, "max-width", flagged.MaxWidth, "Maximum width of the screen in cells")
	fs.BoolVar(&flagged.NoColor, "no-color", flagged.NoColor, "Disable colours")
	fs.StringVar(&flagged.LogFile, "log-file", flagged.LogFile, "File to write logs to, empty to disable logging")
	fs.StringVar(&flagged.LogLevel, "log-level", flagged.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&flagged.DebugHTTP, "debug-http", flagged.DebugHTTP, "Log every request and response sent to the task service")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML configuration file")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg := DefaultConfig()
	if opts.ConfigPath != "" {
		if err := cfg.loadFile(opts.ConfigPath); err != nil {
			return nil, opts, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-url":
			cfg.BaseURL = flagged.BaseURL
		case "timeout":
			cfg.Timeout = flagged.Timeout
		case "lang":
			cfg.Language = flagged.Language
		case "max-width":
			cfg.MaxWidth = flagged.MaxWidth
		case "no-color":
			cfg.NoColor = flagged.NoColor
		case "log-file":
			cfg.LogFile = flagged.LogFile
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "debug-http":
			cfg.DebugHTTP = flagged.DebugHTTP
		}
	})
	return cfg, opts, nil
}
