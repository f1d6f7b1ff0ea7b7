package systems

import (
	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/automoto/dodgefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Mutation is the change a collision applies to the player.
type Mutation struct {
	HPDelta int
	Effect  cfg.ItemEffect
}

// Effect records one resolved collision.
type Effect struct {
	Entity   donburi.Entity
	Kind     cfg.KindID
	Category cfg.Category
	HPBefore int
	HPAfter  int
	// Sound queued for playback, nil when none was found
	Sound *assets.SoundHandle
}

// Overlaps reports whether two colliders intersect. Boxes that only share an
// edge do not overlap.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// ResolveCollisions tests the player against every attack and item that
// shares a space cell with it. Each hit mutates the player, queues the kind's
// sound, publishes a CollisionOccurred event and removes the entity. Hits are
// resolved in query order. The removed set never depends on that order; health
// does only when a clamp at 0 or Max is reached partway through the tick.
func ResolveCollisions(s *Session) []Effect {
	player := s.mustPlayer()
	playerObj := components.Object.Get(player).Object

	hits := nearbyColliders(playerObj, tags.ResolvAttack, tags.ResolvItem)
	if len(hits) == 0 {
		return nil
	}

	effects := make([]Effect, 0, len(hits))
	for _, obj := range hits {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !Overlaps(playerObj, obj) {
			continue
		}
		effects = append(effects, s.resolveHit(player, e))
		factory.Destroy(e)
	}
	if len(effects) == 0 {
		return nil
	}
	return effects
}

// checkOffsets widens the cell query by a pixel on every side. resolv treats
// a collider's far edge as the pixel at X+W-1, which misses sub-pixel
// overlaps that straddle a cell boundary.
var checkOffsets = [][2]float64{{0, 0}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}}

// nearbyColliders returns the distinct objects carrying any of want in the
// cells around obj.
func nearbyColliders(obj *resolv.Object, want ...string) []*resolv.Object {
	var found []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for _, off := range checkOffsets {
		check := obj.Check(off[0], off[1], want...)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if !seen[o] {
				seen[o] = true
				found = append(found, o)
			}
		}
	}
	return found
}

func (s *Session) resolveHit(player, e *donburi.Entry) Effect {
	kind := components.Falling.Get(e).Kind
	m := MutationFor(kind)

	before, after := components.Health.Get(player).Add(m.HPDelta)
	applyItemEffect(components.Player.Get(player), m.Effect)

	effect := Effect{
		Entity:   e.Entity(),
		Kind:     kind,
		Category: kind.Category(),
		HPBefore: before,
		HPAfter:  after,
	}
	if sound, ok := s.collisionSound(kind); ok {
		PlaySFX(s.World, sound)
		effect.Sound = &sound
	}

	CollisionOccurred.Publish(s.World, effect)
	return effect
}

// MutationFor returns the reaction to touching an entity of the given kind.
func MutationFor(kind cfg.KindID) Mutation {
	kc := kind.Config()
	if kc.Category == cfg.CategoryAttack {
		return Mutation{HPDelta: -kc.Damage}
	}

	switch kc.Effect {
	case cfg.EffectHeal:
		return Mutation{HPDelta: kc.Heal, Effect: cfg.EffectHeal}
	case cfg.EffectSpeedUp, cfg.EffectBig:
		// Collected but no stat change yet
		return Mutation{Effect: kc.Effect}
	}
	return Mutation{}
}

func applyItemEffect(player *components.PlayerData, effect cfg.ItemEffect) {
	switch effect {
	case cfg.EffectSpeedUp:
		player.SpeedUps++
	case cfg.EffectBig:
		player.BigUps++
	}
}

// collisionSound finds the sound for kind. Attacks without a keyed sound use
// any damage sound; items without one are logged.
func (s *Session) collisionSound(kind cfg.KindID) (assets.SoundHandle, bool) {
	category := kind.Category()
	key := kind.SoundKey()

	if sound, ok := s.Assets.Sound(category, key); ok {
		return sound, true
	}
	if category == cfg.CategoryAttack {
		return s.Assets.RandomDamageSound(s.Rand)
	}

	s.Logger.Error("item sound key missing", "kind", kind, "key", key)
	return assets.SoundHandle{}, false
}
