package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "cubes.yaml"

// Load loads the cubes configuration and validates it.
// Search order: customPath -> ~/.cubes/configs/cubes.yaml -> ./configs/cubes.yaml -> embedded default.
//
// A custom path that cannot be read is an error. Files in the default
// locations are skipped only when they cannot be read; once one is read it
// must parse and validate.
func Load(customPath string) (CubesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CubesConfig{}, &ConfigError{Key: customPath, Reason: "cannot read", Err: err}
		}
		return parseAndValidate(customPath, data)
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseAndValidate(path, data)
	}

	cfg, err := Parse(defaultCubesYAML)
	if err != nil {
		return DefaultCubesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a YAML document. Unknown keys and values of the wrong type
// are errors so that typos do not silently fall back to zero values.
func Parse(data []byte) (CubesConfig, error) {
	var cfg CubesConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return CubesConfig{}, err
	}
	return cfg, nil
}

func parseAndValidate(path string, data []byte) (CubesConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return CubesConfig{}, &ConfigError{Key: path, Reason: "cannot parse", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return CubesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubes", "configs", filename)
}
