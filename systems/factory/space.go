package factory

import (
	"github.com/automoto/dodgefall/archetypes"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the collision grid covering field. It must exist
// before any collider is created.
func CreateSpace(w donburi.World, field cfg.FieldConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(int(field.Width), int(field.Height), field.CellSize, field.CellSize),
		OriginX: -field.Width / 2,
		OriginY: -field.Height / 2,
	})
	return space
}

// SpaceOf returns the world's collision grid.
func SpaceOf(w donburi.World) *components.SpaceData {
	return components.Space.Get(components.Space.MustFirst(w))
}

// Destroy removes e's collider from the grid, then e from the world.
func Destroy(e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		SpaceOf(e.World).Remove(components.Object.Get(e).Object)
	}
	e.World.Remove(e.Entity())
}

// newCollider registers a w by h collider for e, positioned from e's transform.
func newCollider(e *donburi.Entry, width, height float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, width, height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	SyncCollider(e)
	SpaceOf(e.World).Add(obj)
	return obj
}
