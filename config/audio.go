package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"` // 0.0 - 1.0
	Muted      bool    `yaml:"muted"`
}

// AssetsConfig names the directories scanned at startup. Directories are
// relative to Root; files are keyed by their name without extension.
type AssetsConfig struct {
	Root           string   `yaml:"root"`
	DamageSoundDir string   `yaml:"damageSoundDir"`
	ItemSoundDir   string   `yaml:"itemSoundDir"`
	ItemImageDir   string   `yaml:"itemImageDir"`
	AttackImageDir string   `yaml:"attackImageDir"`
	SoundExts      []string `yaml:"soundExts"`
	ImageExts      []string `yaml:"imageExts"`
}

var Audio AudioConfig
var Assets AssetsConfig
