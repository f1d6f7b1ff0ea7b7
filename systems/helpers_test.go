package systems

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/yohamta/donburi"
)

// fullRegistry has an image and a sound for every kind.
func fullRegistry() *assets.Registry {
	r := assets.NewRegistry(fstest.MapFS{})
	for _, k := range cfg.AttackKinds {
		r.AddImage(cfg.CategoryAttack, k.ImageKey(), "image/attack/"+k.ImageKey()+".png")
		r.AddSound(cfg.CategoryAttack, k.SoundKey(), "audio/damage/"+k.SoundKey()+".ogg")
	}
	for _, k := range cfg.ItemKinds {
		r.AddImage(cfg.CategoryItem, k.ImageKey(), "image/item/"+k.ImageKey()+".png")
		r.AddSound(cfg.CategoryItem, k.SoundKey(), "audio/item/"+k.SoundKey()+".ogg")
	}
	return r
}

func newTestSession(t *testing.T, lookup AssetLookup) *Session {
	t.Helper()
	if lookup == nil {
		lookup = fullRegistry()
	}
	return NewSession(lookup, rand.New(rand.NewSource(1)), nil)
}

// newWorld returns an empty world with its collision space.
func newWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.Field)
	return w
}

// spawnOnPlayer creates an entity of kind centered on the player.
func spawnOnPlayer(s *Session, kind cfg.KindID) *donburi.Entry {
	pos := components.Transform.Get(s.Player).Position
	img := assets.ImageHandle{Key: kind.ImageKey()}
	return factory.CreateFalling(s.World, kind, pos.X, pos.Y, &img)
}

func setHP(s *Session, hp int) {
	components.Health.Get(s.Player).Current = hp
}

func playerX(s *Session) float64 {
	return components.Transform.Get(s.Player).Position.X
}

func setPlayerX(s *Session, x float64) {
	components.Transform.Get(s.Player).Position.X = x
	factory.SyncCollider(s.Player)
}

func held(actions ...cfg.ActionID) *components.InputData {
	in := &components.InputData{}
	for _, a := range actions {
		in.Current[a] = true
	}
	return in
}

// withoutSound hides one sound key of the wrapped lookup.
type withoutSound struct {
	AssetLookup
	category cfg.Category
	key      string
}

func (w withoutSound) Sound(c cfg.Category, key string) (assets.SoundHandle, bool) {
	if c == w.category && key == w.key {
		return assets.SoundHandle{}, false
	}
	return w.AssetLookup.Sound(c, key)
}

// withoutImage hides one image key of the wrapped lookup.
type withoutImage struct {
	AssetLookup
	category cfg.Category
	key      string
}

func (w withoutImage) Image(c cfg.Category, key string) (assets.ImageHandle, bool) {
	if c == w.category && key == w.key {
		return assets.ImageHandle{}, false
	}
	return w.AssetLookup.Image(c, key)
}
