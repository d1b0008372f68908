package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults that flags may override.
type Config struct {
	LogLevel string     `yaml:"log_level"`
	Mesh     MeshConfig `yaml:"mesh"`
}

// MeshConfig mirrors the GLTF loader options.
type MeshConfig struct {
	CalculateNormals bool `yaml:"calculate_normals"`
	SmoothNormals    bool `yaml:"smooth_normals"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Mesh: MeshConfig{
			CalculateNormals: true,
			SmoothNormals:    true,
		},
	}
}

// LoadConfig decodes YAML from r on top of the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a config file. An empty path yields the defaults.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
