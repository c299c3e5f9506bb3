package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

type Config struct {
	ApiKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	SaveDir string        `yaml:"save_dir"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig is used when no config file exists; the client then relies
// on the WALLHAVEN_API_KEY environment variable for authentication.
func DefaultConfig() *Config {
	config := &Config{SaveDir: "wallpapers", Timeout: 30 * time.Second}
	config.SaveDir, _ = filepath.Abs(config.SaveDir)
	return config
}

// ParseConfig loads the CLI configuration. SaveDir is normalized to an
// absolute path and created up front.
func ParseConfig(configFile string) (*Config, error) {
	config := &Config{}
	var dat []byte
	var err error
	if dat, err = os.ReadFile(configFile); err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(dat, config); err != nil {
		return nil, err
	}

	if config.SaveDir == "" {
		config.SaveDir = "wallpapers"
	}
	if config.SaveDir, err = filepath.Abs(config.SaveDir); err != nil {
		return nil, err
	}
	if err = os.MkdirAll(config.SaveDir, os.ModePerm); err != nil {
		return nil, err
	}

	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return config, nil
}
