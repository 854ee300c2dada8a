package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadKitty loads Happy Kitty configuration.
// Search order: customPath -> ~/.arcade/configs/kitty.yaml -> ./configs/kitty.yaml -> embedded default
func LoadKitty(customPath string) (KittyConfig, Source, error) {
	cfg, src, err := load("kitty.yaml", customPath, defaultKittyYAML, DefaultKittyConfig)
	if err != nil {
		return cfg, src, err
	}
	return cfg, src, ValidateKitty(cfg)
}

// LoadTrain loads Happy Train configuration.
// Search order: customPath -> ~/.arcade/configs/train.yaml -> ./configs/train.yaml -> embedded default
func LoadTrain(customPath string) (TrainConfig, Source, error) {
	cfg, src, err := load("train.yaml", customPath, defaultTrainYAML, DefaultTrainConfig)
	if err != nil {
		return cfg, src, err
	}
	return cfg, src, ValidateTrain(cfg)
}

// load decodes a config over its hardcoded defaults, so a partial file
// only overrides the keys it names.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, defaults); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", filename), defaults); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func decodeFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults(), false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ValidateKitty rejects configurations the simulation cannot run.
func ValidateKitty(cfg KittyConfig) error {
	switch {
	case cfg.World.Width <= 0 || cfg.World.Height <= 0:
		return fmt.Errorf("config: kitty world must have a positive size")
	case cfg.Player.Width <= 0 || cfg.Player.Height <= 0:
		return fmt.Errorf("config: kitty player must have a positive size")
	case cfg.Player.Lives <= 0:
		return fmt.Errorf("config: kitty player needs at least one life")
	case cfg.Physics.StompBounceDivisor == 0:
		return fmt.Errorf("config: kitty stomp_bounce_divisor must not be zero")
	}
	for i, d := range cfg.Level.Dogs {
		if d.Range < 0 {
			return fmt.Errorf("config: kitty dog %d has negative range", i)
		}
	}
	return nil
}

// ValidateTrain rejects configurations the simulation cannot run.
func ValidateTrain(cfg TrainConfig) error {
	switch {
	case cfg.View.Width <= 0 || cfg.View.Height <= 0:
		return fmt.Errorf("config: train view must have a positive size")
	case cfg.Train.Wagons < 0:
		return fmt.Errorf("config: train wagon count must not be negative")
	case cfg.Level.TargetDistance <= 0:
		return fmt.Errorf("config: train target_distance must be positive")
	case cfg.Speed.Min < 0 || cfg.Speed.Max < cfg.Speed.Min:
		return fmt.Errorf("config: train speed range is invalid")
	}
	for i, t := range cfg.Level.Tunnels {
		if t.Length <= 0 {
			return fmt.Errorf("config: train tunnel %d must have a positive length", i)
		}
	}
	return nil
}
