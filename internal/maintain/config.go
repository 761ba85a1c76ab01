// Package maintain implements an out-of-process maintenance daemon for a
// recfile database: a cron-driven schedule that walks the catalog and
// vacuums every table the config does not exclude.
package maintain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the maintenance daemon's on-disk configuration, loaded from
// YAML. It names the database file to operate on, the cron schedule to
// vacuum on, and which tables to skip.
type Config struct {
	// DatabasePath is the recfile file the daemon operates on.
	DatabasePath string `yaml:"database_path"`

	// Schedule is a standard 5-field cron expression (minute hour
	// day-of-month month day-of-week).
	Schedule string `yaml:"schedule"`

	// Exclude lists table names the daemon never vacuums.
	Exclude []string `yaml:"exclude"`
}

// LoadConfig reads and parses a Config from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DatabasePath == "" {
		return Config{}, fmt.Errorf("config %s: database_path is required", path)
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 3 * * *" // daily at 03:00
	}
	return cfg, nil
}

// excludes reports whether table is in cfg's exclude list.
func (cfg Config) excludes(table string) bool {
	for _, name := range cfg.Exclude {
		if name == table {
			return true
		}
	}
	return false
}
