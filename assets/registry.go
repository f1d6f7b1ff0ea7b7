package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/dodgefall/config"
)

// ErrMissingDir is returned by Scan when a required asset directory does not exist.
var ErrMissingDir = errors.New("asset directory not found")

// ImageHandle refers to an image file inside the registry's file system.
type ImageHandle struct {
	Key  string
	Path string
}

// SoundHandle refers to an audio file inside the registry's file system.
type SoundHandle struct {
	Key  string
	Path string
}

// Registry maps symbolic keys to image and sound files. It is read-only
// once built and safe to share.
type Registry struct {
	fsys fs.FS

	attackImages map[string]ImageHandle
	itemImages   map[string]ImageHandle
	damageSounds map[string]SoundHandle
	itemSounds   map[string]SoundHandle

	// Sorted keys of damageSounds so random picks are reproducible for a seed
	damageKeys []string
}

// NewRegistry returns an empty registry backed by fsys.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:         fsys,
		attackImages: make(map[string]ImageHandle),
		itemImages:   make(map[string]ImageHandle),
		damageSounds: make(map[string]SoundHandle),
		itemSounds:   make(map[string]SoundHandle),
	}
}

// Scan builds a registry from the directories named in c. Every directory
// must exist; a missing one is a startup fault reported with its path.
func Scan(fsys fs.FS, c cfg.AssetsConfig) (*Registry, error) {
	r := NewRegistry(fsys)

	dirs := []struct {
		dir  string
		exts []string
		add  func(key, p string)
	}{
		{c.DamageSoundDir, c.SoundExts, func(k, p string) { r.AddSound(cfg.CategoryAttack, k, p) }},
		{c.ItemSoundDir, c.SoundExts, func(k, p string) { r.AddSound(cfg.CategoryItem, k, p) }},
		{c.AttackImageDir, c.ImageExts, func(k, p string) { r.AddImage(cfg.CategoryAttack, k, p) }},
		{c.ItemImageDir, c.ImageExts, func(k, p string) { r.AddImage(cfg.CategoryItem, k, p) }},
	}

	for _, d := range dirs {
		files, err := listFiles(fsys, d.dir, d.exts)
		if err != nil {
			return nil, err
		}
		for _, p := range files {
			d.add(stem(p), p)
		}
	}

	return r, nil
}

// listFiles returns the files in dir whose extension is one of exts.
func listFiles(fsys fs.FS, dir string, exts []string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDir, dir)
		}
		return nil, fmt.Errorf("failed to read asset directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, path.Join(dir, entry.Name()))
				break
			}
		}
	}
	return files, nil
}

// stem returns the file name without directory and extension.
func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// AddImage registers an image for a category.
func (r *Registry) AddImage(c cfg.Category, key, p string) {
	h := ImageHandle{Key: key, Path: p}
	if c == cfg.CategoryAttack {
		r.attackImages[key] = h
		return
	}
	r.itemImages[key] = h
}

// AddSound registers a sound. Attack sounds go to the damage set.
func (r *Registry) AddSound(c cfg.Category, key, p string) {
	h := SoundHandle{Key: key, Path: p}
	if c == cfg.CategoryItem {
		r.itemSounds[key] = h
		return
	}
	if _, ok := r.damageSounds[key]; !ok {
		r.damageKeys = append(r.damageKeys, key)
		sort.Strings(r.damageKeys)
	}
	r.damageSounds[key] = h
}

// FS returns the file system handles are resolved against.
func (r *Registry) FS() fs.FS {
	return r.fsys
}

// Image looks up the image registered for key in category c.
func (r *Registry) Image(c cfg.Category, key string) (ImageHandle, bool) {
	if c == cfg.CategoryAttack {
		h, ok := r.attackImages[key]
		return h, ok
	}
	h, ok := r.itemImages[key]
	return h, ok
}

// Sound looks up a damage sound (attacks) or an item sound (items).
func (r *Registry) Sound(c cfg.Category, key string) (SoundHandle, bool) {
	if c == cfg.CategoryAttack {
		h, ok := r.damageSounds[key]
		return h, ok
	}
	h, ok := r.itemSounds[key]
	return h, ok
}

// RandomDamageSound picks any damage sound.
func (r *Registry) RandomDamageSound(rng *rand.Rand) (SoundHandle, bool) {
	if len(r.damageKeys) == 0 {
		return SoundHandle{}, false
	}
	return r.damageSounds[r.damageKeys[rng.Intn(len(r.damageKeys))]], true
}

// Sounds returns every registered sound, damage sounds first.
func (r *Registry) Sounds() []SoundHandle {
	out := make([]SoundHandle, 0, len(r.damageSounds)+len(r.itemSounds))
	for _, k := range r.damageKeys {
		out = append(out, r.damageSounds[k])
	}
	keys := make([]string, 0, len(r.itemSounds))
	for k := range r.itemSounds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, r.itemSounds[k])
	}
	return out
}

// Counts reports how many files were registered, for startup logging.
func (r *Registry) Counts() (images, sounds int) {
	return len(r.attackImages) + len(r.itemImages), len(r.damageSounds) + len(r.itemSounds)
}
