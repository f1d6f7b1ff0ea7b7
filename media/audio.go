package media

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/dodgefall/assets"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/yohamta/donburi"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a loader reading files from fsys.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(p string) error {
	_, err := l.decoded(p)
	return err
}

// LoadSFX returns a new player for a sound effect. SFX are cached as
// decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	decoded, err := l.decoded(p)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decoded(p string) ([]byte, error) {
	if cached, ok := l.sfxCache[p]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}

	l.sfxCache[p] = decoded
	return decoded, nil
}

// Player plays registry sounds once each. Players are not kept; the audio
// context drops them when playback finishes.
type Player struct {
	loader *AudioLoader
	logger *log.Logger

	volume float64
	muted  bool
}

// NewPlayer creates a player for sounds stored in fsys.
func NewPlayer(ctx *audio.Context, fsys fs.FS, c cfg.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		loader: NewAudioLoader(ctx, fsys),
		logger: logger,
		volume: c.SFXVolume,
		muted:  c.Muted,
	}
}

// Preload decodes every sound up front so the first play does not stall a
// frame. Files that fail to decode are logged and skipped.
func (p *Player) Preload(sounds []assets.SoundHandle) {
	for _, h := range sounds {
		if err := p.loader.PreloadSFX(h.Path); err != nil {
			p.logger.Warn("sound not preloaded", "key", h.Key, "err", err)
		}
	}
}

// PlayOnce starts a sound and returns immediately.
func (p *Player) PlayOnce(h assets.SoundHandle) {
	if p.muted || p.volume <= 0 {
		return
	}

	player, err := p.loader.LoadSFX(h.Path)
	if err != nil {
		p.logger.Error("sound playback failed", "key", h.Key, "err", err)
		return
	}
	player.SetVolume(p.volume)
	player.Play()
}

// Drain plays every sound queued in w since the last call.
func (p *Player) Drain(w donburi.World) {
	for _, h := range systems.DrainSFX(w) {
		p.PlayOnce(h)
	}
}

// SetVolume sets the effect volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.volume = min(max(v, 0), 1)
}

func (p *Player) ToggleMute() {
	p.muted = !p.muted
}

// Settings returns the current volume and mute state.
func (p *Player) Settings() cfg.AudioConfig {
	c := cfg.Audio
	c.SFXVolume = p.volume
	c.Muted = p.muted
	return c
}
