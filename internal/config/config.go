package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up at the scan root.
const FileName = ".kritik.yml"

// DefaultBaselinePath is used when the config does not name one.
const DefaultBaselinePath = "kritik-baseline.yml"

// Rules holds per-rule thresholds and the disabled-rule list.
type Rules struct {
	MaxFunctionLines int      `yaml:"maxFunctionLines"`
	MaxParameters    int      `yaml:"maxParameters"`
	MaxClassMembers  int      `yaml:"maxClassMembers"`
	Disabled         []string `yaml:"disabled"`
}

// Config is the project-level configuration loaded from .kritik.yml.
type Config struct {
	Baseline string   `yaml:"baseline"`
	Ignore   []string `yaml:"ignore"`
	Rules    Rules    `yaml:"rules"`
}

// Default returns the configuration used when no .kritik.yml exists.
func Default() Config {
	return Config{
		Baseline: DefaultBaselinePath,
		Rules: Rules{
			MaxFunctionLines: 60,
			MaxParameters:    6,
			MaxClassMembers:  20,
		},
	}
}

// Load reads .kritik.yml from root. A missing file yields the defaults;
// a present but unreadable or malformed file is an error, since silently
// falling back would scan with the wrong thresholds.
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Baseline == "" {
		cfg.Baseline = DefaultBaselinePath
	}
	return applyFloors(cfg), nil
}

// applyFloors keeps zero or negative thresholds from disabling rules by
// accident when a config names a rule section but omits a value.
func applyFloors(cfg Config) Config {
	def := Default().Rules
	if cfg.Rules.MaxFunctionLines <= 0 {
		cfg.Rules.MaxFunctionLines = def.MaxFunctionLines
	}
	if cfg.Rules.MaxParameters <= 0 {
		cfg.Rules.MaxParameters = def.MaxParameters
	}
	if cfg.Rules.MaxClassMembers <= 0 {
		cfg.Rules.MaxClassMembers = def.MaxClassMembers
	}
	return cfg
}
