package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const FileName = ".checkmysmartcontract.json"

type IgnoreRule struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

type ServerConfig struct {
	Port         string `json:"port"`
	DatabasePath string `json:"databasePath"`
}

type Config struct {
	SeverityThreshold string       `json:"severityThreshold"`
	Rules             []string     `json:"rules"`
	Ignore            []IgnoreRule `json:"ignore"`
	Server            ServerConfig `json:"server"`
}

func Default() Config {
	return Config{
		SeverityThreshold: "info",
		Server:            ServerConfig{Port: "8080"},
	}
}

// Load searches upwards from startDir for the config file. Missing or
// malformed files fall back to the defaults.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
