package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

const configName = ".playground.yaml"

// TreeConfig holds the default values of the avl and bst commands.
type TreeConfig struct {
	Insert []int `yaml:"insert"`
	Remove []int `yaml:"remove"`
	Query  []int `yaml:"query"`
}

type AutocompleteConfig struct {
	Words           []string      `yaml:"words"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Limit           int           `yaml:"limit"`
}

// LoggingConfig mirrors logger.Configuration. An empty directory means the system temp dir.
type LoggingConfig struct {
	Directory string            `yaml:"directory"`
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Console   bool              `yaml:"console"`
	Levels    map[string]string `yaml:"levels"`
}

type Config struct {
	AVL          TreeConfig         `yaml:"avl"`
	Autocomplete AutocompleteConfig `yaml:"autocomplete"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// newDefaultConfig returns a fresh copy each call; decoding mutates the maps it is given.
func newDefaultConfig() *Config {
	return &Config{
		AVL: TreeConfig{
			Insert: []int{3, 1, 4, 0, 2, 5},
			Query:  []int{1110, 4},
		},
		Autocomplete: AutocompleteConfig{
			Words: []string{
				"car", "carbs", "care", "carapace", "cargo", "cat", "catalog", "cattle",
				"swift", "swiftly", "sweet", "swim", "switch", "tree", "trie", "trick",
			},
			CacheTTL:        5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
			Limit:           10,
		},
		Logging: LoggingConfig{
			File:  "playground.log",
			Size:  1048576,
			Count: 20,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configName), nil
}

// LoadConfig reads the yaml file at path over the defaults. A missing file yields the defaults,
// an unreadable or malformed one an error.
func LoadConfig(path string) (*Config, error) {
	config := newDefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c LoggingConfig) configuration() logger.Configuration {
	dir := c.Directory
	if dir == "" {
		dir = os.TempDir()
	}
	return logger.Configuration{
		Directory: dir,
		File:      c.File,
		Size:      c.Size,
		Count:     c.Count,
		Console:   c.Console,
		Levels:    c.Levels,
	}
}
