package factory

import (
	"github.com/automoto/dodgefall/archetypes"
	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateFalling spawns an attack or item of the given kind centered at (x, y).
// image may be nil, in which case the renderer draws a placeholder box.
func CreateFalling(w donburi.World, kind cfg.KindID, x, y float64, image *assets.ImageHandle) *donburi.Entry {
	kc := kind.Config()

	var e *donburi.Entry
	resolvTag := tags.ResolvAttack
	if kc.Category == cfg.CategoryAttack {
		e = archetypes.Attack.Spawn(w)
	} else {
		e = archetypes.Item.Spawn(w)
		resolvTag = tags.ResolvItem
	}

	components.Falling.SetValue(e, components.FallingData{Kind: kind})
	components.Transform.SetValue(e, components.TransformData{
		Position: math.NewVec2(x, y),
		Scale:    math.NewVec2(kc.ScaleX, kc.ScaleY),
	})

	newCollider(e, kc.ScaleX, kc.ScaleY, resolvTag)

	components.Sprite.SetValue(e, components.SpriteData{Image: image})

	return e
}

// SyncCollider moves the entry's collider to match its transform and
// re-registers it with the space.
func SyncCollider(e *donburi.Entry) {
	t := components.Transform.Get(e)
	obj := components.Object.Get(e)
	obj.W, obj.H = t.Scale.X, t.Scale.Y
	obj.X, obj.Y = SpaceOf(e.World).ToSpace(t.Position.X-obj.W/2, t.Position.Y-obj.H/2)
	obj.Update()
}
