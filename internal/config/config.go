package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Screen names recognized in leaddeck.yml.
var ScreenNames = []string{"leads", "contacts", "clients", "tasks", "outreach", "pipelines"}

// Config models leaddeck.yml.
type Config struct {
	Locale  string            `yaml:"locale"`
	Screens map[string]Screen `yaml:"screens"`
	Metrics struct {
		PeriodDays int `yaml:"period_days"`
	} `yaml:"metrics"`
}

// Screen holds per-list-screen view settings.
type Screen struct {
	PageSize    int    `yaml:"page_size"`
	DefaultSort string `yaml:"default_sort"`
}

// Load reads and validates config from a workspace directory.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns the defaults if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "leaddeck.yml")
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Locale == "" {
		return fmt.Errorf("config.locale is required")
	}
	for name, s := range c.Screens {
		known := false
		for _, n := range ScreenNames {
			if n == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("config.screens contains unknown screen %q", name)
		}
		if s.PageSize < 1 {
			return fmt.Errorf("screen %s page_size must be >= 1", name)
		}
	}
	if c.Metrics.PeriodDays < 1 {
		return fmt.Errorf("config.metrics.period_days must be >= 1")
	}
	return nil
}

// ScreenOr returns the named screen's settings, falling back to defaults
// for screens the config file omits.
func (c *Config) ScreenOr(name string) Screen {
	if s, ok := c.Screens[name]; ok {
		return s
	}
	def := Default()
	return def.Screens[name]
}

// Default returns the default Config struct.
func Default() *Config {
	var cfg Config
	_ = yaml.Unmarshal([]byte(defaultTemplate), &cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes. Omitted
// top-level fields fall back to defaults before validation.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// GenerateDefault returns default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

const defaultTemplate = `locale: en

screens:
  leads:
    page_size: 8
    default_sort: created
  contacts:
    page_size: 10
    default_sort: name
  clients:
    page_size: 8
    default_sort: company
  tasks:
    page_size: 12
    default_sort: due
  outreach:
    page_size: 10
    default_sort: created
  pipelines:
    page_size: 6
    default_sort: started

metrics:
  period_days: 7
`
