package systems

import (
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/yohamta/donburi"
)

// MoveFalling lowers every attack and item by its kind's speed. Speed is a
// distance per tick.
func MoveFalling(w donburi.World) {
	components.Falling.Each(w, func(e *donburi.Entry) {
		falling := components.Falling.Get(e)
		t := components.Transform.Get(e)

		t.Position.Y -= falling.Kind.Speed()
		falling.Age++
		factory.SyncCollider(e)
	})
}

// DespawnOffField removes falling entities whose box is entirely below the
// field, along with their colliders, and returns how many were removed.
func DespawnOffField(w donburi.World, field cfg.FieldConfig) int {
	var toRemove []*donburi.Entry

	bottom := field.Bottom()
	components.Falling.Each(w, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		if t.Position.Y+t.Scale.Y/2 < bottom {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(e)
	}
	return len(toRemove)
}

// ActiveCount returns the number of live attacks and items.
func ActiveCount(w donburi.World) int {
	n := 0
	components.Falling.Each(w, func(*donburi.Entry) { n++ })
	return n
}
