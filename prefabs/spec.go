package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Direction policy names accepted by Config.Policy.
const (
	PolicyUniform = "uniform"
	PolicyEdge    = "edge"
	PolicyScript  = "script"
)

// Config is the simulation configuration loaded from config.yaml.
type Config struct {
	// CellSize is the grid cell edge in pixels.
	CellSize int `yaml:"cell_size"`
	// Policy selects how pets pick walk directions: uniform, edge, or script.
	Policy string `yaml:"direction_policy"`
	// EdgeMargin is how many cells from a border the edge policy starts
	// steering pets back inward.
	EdgeMargin int `yaml:"edge_margin"`
	// Script is the scripts/ file used when Policy is "script".
	Script string `yaml:"script"`
	// Seed seeds the wander randomness; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
	// Pets is the roster of characters to spawn.
	Pets []PetSpec `yaml:"pets"`
}

// PetSpec spawns Count pets of one character.
type PetSpec struct {
	Character string `yaml:"character"`
	Count     int    `yaml:"count"`
}

// LoadSpec reads and unmarshals a YAML document from the prefabs directory
// (disk copy first, embedded fallback).
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadConfig loads config.yaml, fills defaults, and validates it.
func LoadConfig() (*Config, error) {
	cfg, err := LoadSpec[Config]("config.yaml")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CellSize <= 0 {
		c.CellSize = 64
	}
	if c.Policy == "" {
		c.Policy = PolicyEdge
	}
	if c.EdgeMargin <= 0 {
		c.EdgeMargin = 1
	}
	if c.Script == "" {
		c.Script = "wander.tengo"
	}
	for i := range c.Pets {
		if c.Pets[i].Count <= 0 {
			c.Pets[i].Count = 1
		}
	}
}

func (c *Config) validate() error {
	switch c.Policy {
	case PolicyUniform, PolicyEdge, PolicyScript:
	default:
		return fmt.Errorf("prefabs: unknown direction_policy %q", c.Policy)
	}
	if len(c.Pets) == 0 {
		return fmt.Errorf("prefabs: config has no pets")
	}
	for _, p := range c.Pets {
		if p.Character == "" {
			return fmt.Errorf("prefabs: pet entry with empty character")
		}
	}
	return nil
}
