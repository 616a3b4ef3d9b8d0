package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed policies.yaml
var policiesYAML []byte

type Config struct {
	Output   OutputConfig
	Engine   EngineConfig
	Server   ServerConfig
	Policies PoliciesConfig
}

type OutputConfig struct {
	Dir string // directory for .sol artifacts (default ".")
}

type EngineConfig struct {
	Ranking     string // ranking policy name
	Sequencing  string // sequencing policy name
	Concurrency int    // parallel files in a batch (default 4)
}

type ServerConfig struct {
	ListenAddr string // defaults to :8080
}

// PoliciesConfig declares the known policy names, their descriptions
// and the defaults. Loaded from the embedded policies.yaml.
type PoliciesConfig struct {
	Ranking    PolicyGroup `yaml:"ranking"`
	Sequencing PolicyGroup `yaml:"sequencing"`
}

type PolicyGroup struct {
	Default  string            `yaml:"default"`
	Policies map[string]string `yaml:"policies"`
}

// Known reports whether name is a declared policy of the group.
func (g PolicyGroup) Known(name string) bool {
	_, ok := g.Policies[name]
	return ok
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var policies PoliciesConfig
	if err := yaml.Unmarshal(policiesYAML, &policies); err != nil {
		// Embedded file, so this should never happen in practice.
		panic("failed to unmarshal embedded policies.yaml: " + err.Error())
	}

	return &Config{
		Output: OutputConfig{
			Dir: envString("SLIDESHOW_OUTPUT_DIR", "."),
		},
		Engine: EngineConfig{
			Ranking:     envString("SLIDESHOW_RANKING", policies.Ranking.Default),
			Sequencing:  envString("SLIDESHOW_SEQUENCING", policies.Sequencing.Default),
			Concurrency: envInt("SLIDESHOW_CONCURRENCY", 4),
		},
		Server: ServerConfig{
			ListenAddr: envString("SLIDESHOW_LISTEN_ADDR", ":8080"),
		},
		Policies: policies,
	}
}
