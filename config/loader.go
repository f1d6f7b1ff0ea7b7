package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of an override file. Sections that are
// absent keep their current values.
type fileConfig struct {
	Window *Config        `yaml:"window"`
	Field  *FieldConfig   `yaml:"field"`
	Player *PlayerConfig  `yaml:"player"`
	Spawn  *SpawnConfig   `yaml:"spawn"`
	Audio  *AudioConfig   `yaml:"audio"`
	Assets *AssetsConfig  `yaml:"assets"`
	Effect *EffectsConfig `yaml:"effects"`
}

// Load overlays a YAML file onto the built-in configuration.
// Search order: customPath -> ~/.dodgefall/config.yaml -> ./configs/dodgefall.yaml.
// When no file is found the defaults stay in place. A customPath that
// cannot be read or parsed is an error.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "dodgefall.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, Validate()
	}

	return "", nil
}

func apply(data []byte) error {
	// Decode into copies so a parse error leaves the globals untouched.
	window, field, player, spawn := *C, Field, Player, Spawn
	audio, assets, effects := Audio, Assets, Effects
	fc := fileConfig{
		Window: &window,
		Field:  &field,
		Player: &player,
		Spawn:  &spawn,
		Audio:  &audio,
		Assets: &assets,
		Effect: &effects,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	C = &window
	Field, Player, Spawn = field, player, spawn
	Audio, Assets, Effects = audio, assets, effects
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func Validate() error {
	var errs []error
	if Field.PlayerMoveLimitLeft > Field.PlayerMoveLimitRight {
		errs = append(errs, fmt.Errorf("field: move limit left %.1f is right of %.1f",
			Field.PlayerMoveLimitLeft, Field.PlayerMoveLimitRight))
	}
	if Field.Width <= 0 || Field.Height <= 0 {
		errs = append(errs, errors.New("field: width and height must be positive"))
	}
	if Field.CellSize <= 0 {
		errs = append(errs, errors.New("field: cell size must be positive"))
	}
	if Player.Speed < 0 {
		errs = append(errs, errors.New("player: speed must not be negative"))
	}
	if Player.Health <= 0 {
		errs = append(errs, errors.New("player: health must be positive"))
	}
	if Spawn.AttackInitialInterval <= 0 || Spawn.AttackIntervalMin <= 0 || Spawn.ItemInterval <= 0 {
		errs = append(errs, errors.New("spawn: intervals must be positive"))
	}
	if Spawn.AttackIntervalMin > Spawn.AttackIntervalMax {
		errs = append(errs, fmt.Errorf("spawn: attack interval range [%s, %s] is inverted",
			Spawn.AttackIntervalMin, Spawn.AttackIntervalMax))
	}
	if C.TPS <= 0 {
		errs = append(errs, errors.New("window: tps must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodgefall", filename)
}
