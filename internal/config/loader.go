package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.{yaml,toml} ->
// ./configs/invaders.yaml -> embedded default.
//
// Files only need to set the values they change; everything else keeps its
// default. The result is not validated; call Validate before use.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, _, err := ResolveInvaders(customPath)
	return cfg, err
}

// ResolveInvaders is LoadInvaders that also reports where the config came
// from: the file path it read, or SourceEmbedded.
func ResolveInvaders(customPath string) (InvadersConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	for _, name := range []string{"invaders.yaml", "invaders.toml"} {
		if path := userConfigPath(name); path != "" {
			if cfg, err := loadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "invaders.yaml")
	if cfg, err := loadFile(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a config file on top of the defaults.
// The format is chosen by extension: .toml uses TOML, anything else YAML.
func loadFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := Decode(data, formatFor(path), &cfg); err != nil {
		return DefaultInvadersConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// formatFor picks the config format from a file extension.
func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode unmarshals data in the given format into cfg.
// Fields absent from data are left untouched.
func Decode(data []byte, format Format, cfg *InvadersConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg InvadersConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return []byte(sb.String()), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
