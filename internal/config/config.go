package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the audit target upward.
const FileName = ".depaudit.yaml"

type IgnoreRule struct {
	Rule   string `yaml:"rule"`
	Path   string `yaml:"path"`
	Reason string `yaml:"reason,omitempty"`
}

type Classifier struct {
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args,omitempty"`
	TimeoutMs int      `yaml:"timeoutMs"`
	Weight    float64  `yaml:"weight"`
}

func (c Classifier) Enabled() bool { return c.Command != "" }

type Config struct {
	SeverityThreshold string       `yaml:"severityThreshold"`
	DisabledRules     []string     `yaml:"disabledRules,omitempty"`
	Ignore            []IgnoreRule `yaml:"ignore,omitempty"`
	CacheSize         int          `yaml:"cacheSize"`
	Workers           int          `yaml:"workers"`
	Classifier        Classifier   `yaml:"classifier"`
}

func Default() Config {
	return Config{
		SeverityThreshold: "info",
		CacheSize:         256,
		Classifier:        Classifier{TimeoutMs: 5000, Weight: 0},
	}
}

// Load reads path when given; otherwise it searches startDir and its parents
// for FileName. It returns the path actually used, or "" for defaults.
func Load(startDir, path string) (Config, string, error) {
	cfg := Default()
	if path != "" {
		err := readInto(path, &cfg)
		return cfg, path, err
	}
	dir := startDir
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			err := readInto(candidate, &cfg)
			return cfg, candidate, err
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}

func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Write stores cfg as YAML at dir/FileName.
func Write(dir string, cfg Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	return path, os.WriteFile(path, data, 0o644)
}
