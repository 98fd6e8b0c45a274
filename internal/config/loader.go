package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the configuration compiled into the binary.
const SourceEmbedded = "embedded"

// LoadPlatformer loads platformer tuning and reports where it came from.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path that
// fails is an error; a search-path file that fails is logged and skipped.
// A nil logger discards the warnings.
func LoadPlatformer(customPath string, logger *log.Logger) (PlatformerConfig, string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParsePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("platformer.yaml"), filepath.Join("configs", "platformer.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping config", "path", path, "error", err)
			}
			continue
		}
		cfg, err := ParsePlatformer(data)
		if err != nil {
			logger.Warn("skipping config", "path", path, "error", err)
			continue
		}
		return cfg, path, nil
	}

	cfg, err := ParsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParsePlatformer decodes YAML on top of the defaults and validates the result.
func ParsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
