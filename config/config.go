package config

import (
	"image/color"
	"time"
)

// FieldConfig describes the play field in world coordinates.
// The origin is the field center and y grows upward.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Horizontal range the player can reach. Falling entities spawn
	// uniformly inside the same range.
	PlayerMoveLimitLeft  float64 `yaml:"playerMoveLimitLeft"`
	PlayerMoveLimitRight float64 `yaml:"playerMoveLimitRight"`

	// Vertical coordinate every falling entity starts at
	EntityStartY float64 `yaml:"entityStartY"`

	// Side of one collision grid cell, in pixels
	CellSize int `yaml:"cellSize"`
}

// Bottom returns the lowest y coordinate inside the field.
func (f FieldConfig) Bottom() float64 {
	return -f.Height / 2
}

// ToScreen converts a world position to screen pixels, where the origin is
// the top-left corner and y grows downward.
func (f FieldConfig) ToScreen(x, y float64) (sx, sy float64) {
	return x + f.Width/2, f.Height/2 - y
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per tick
	Speed float64 `yaml:"speed"`

	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Combat
	Health int `yaml:"health"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// SpawnConfig controls the attack and item spawn timers.
type SpawnConfig struct {
	// First attack fires after this interval, later intervals are
	// redrawn uniformly from [AttackIntervalMin, AttackIntervalMax].
	AttackInitialInterval time.Duration `yaml:"attackInitialInterval"`
	AttackIntervalMin     time.Duration `yaml:"attackIntervalMin"`
	AttackIntervalMax     time.Duration `yaml:"attackIntervalMax"`

	ItemInterval time.Duration `yaml:"itemInterval"`
}

// EffectsConfig contains hit and pickup feedback configuration
type EffectsConfig struct {
	DamageFlashSeconds float32    `yaml:"damageFlashSeconds"`
	PickupFlashSeconds float32    `yaml:"pickupFlashSeconds"`
	DamageFlashColor   color.RGBA `yaml:"-"`
	PickupFlashColor   color.RGBA `yaml:"-"`
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float32
	HealthBarHeight float32
	HealthBarMargin float32

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HUDTextColor     color.RGBA
	PlayerColor      color.RGBA
	AttackColor      color.RGBA
	ItemColor        color.RGBA

	HUDFontSize float64
}

// Config holds general game configuration
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// TickDuration is the simulated time of one update tick.
func (c *Config) TickDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Player PlayerConfig
var Spawn SpawnConfig
var Effects EffectsConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	setDefaults()
}

// setDefaults restores every configuration section to its built-in values.
func setDefaults() {
	C = &Config{
		Title:  "避けゲー",
		Width:  800,
		Height: 720,
		TPS:    60,
	}

	Field = FieldConfig{
		Width:                800,
		Height:               720,
		PlayerMoveLimitLeft:  -375,
		PlayerMoveLimitRight: 375,
		EntityStartY:         350,
		CellSize:             16,
	}

	Player = PlayerConfig{
		Speed:           7.5,
		StartX:          0,
		StartY:          -300,
		Health:          100,
		CollisionWidth:  40,
		CollisionHeight: 40,
	}

	Spawn = SpawnConfig{
		AttackInitialInterval: 500 * time.Millisecond,
		AttackIntervalMin:     100 * time.Millisecond,
		AttackIntervalMax:     300 * time.Millisecond,
		ItemInterval:          3 * time.Second,
	}

	Effects = EffectsConfig{
		DamageFlashSeconds: 0.3,
		PickupFlashSeconds: 0.2,
		DamageFlashColor:   LightRed,
		PickupFlashColor:   LightGreen,
	}

	UI = UIConfig{
		HealthBarWidth:   200,
		HealthBarHeight:  14,
		HealthBarMargin:  10,
		HealthBarBgColor: color.RGBA{40, 40, 40, 255},
		HealthBarFgColor: color.RGBA{40, 220, 40, 255},
		HUDTextColor:     White,
		PlayerColor:      White,
		AttackColor:      LightRed,
		ItemColor:        LightGreen,
		HUDFontSize:      16,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}

	Assets = AssetsConfig{
		Root:           "assets",
		DamageSoundDir: "audio/damage",
		ItemSoundDir:   "audio/item",
		ItemImageDir:   "image/item",
		AttackImageDir: "image/attack",
		SoundExts:      []string{".ogg", ".wav"},
		ImageExts:      []string{".png"},
	}
}
