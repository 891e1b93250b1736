package fdrconfig

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Load reads, defaults, and validates a configuration file.  Unknown keys
// are errors.
func Load(filename string) (*Config, error) {
	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse is Load for in-memory configuration text.
func Parse(yamlBytes []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(yamlBytes, &cfg, yaml.DisallowUnknownFields); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.NetCDF.Engine == "" {
		cfg.NetCDF.Engine = DefaultEngine
	}
	for name, enc := range cfg.NetCDF.Encoding {
		if enc.Zlib && enc.Complevel == nil {
			complevel := DefaultComplevel
			enc.Complevel = &complevel
			cfg.NetCDF.Encoding[name] = enc
		}
	}
}
