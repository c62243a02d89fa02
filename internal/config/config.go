package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API           APIConfig           `yaml:"api"`
	Logging       LoggingConfig       `yaml:"logging"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tasks         TasksConfig         `yaml:"tasks"`
}

type APIConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type NotificationsConfig struct {
	Duration Duration `yaml:"duration"`
}

type TasksConfig struct {
	PageSize int `yaml:"page_size"`
}

// Duration понимает значения вида "10s" и "500ms"
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("неверная длительность %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000/api/v1"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(10 * time.Second)
	}
	if c.Notifications.Duration == 0 {
		c.Notifications.Duration = Duration(4 * time.Second)
	}
	if c.Tasks.PageSize == 0 {
		c.Tasks.PageSize = 20
	}
}
