package archetypes

import (
	"github.com/automoto/dodgefall/components"
	"github.com/automoto/dodgefall/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Health,
		components.Sprite,
		components.Flash,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Falling,
		components.Transform,
		components.Object,
		components.Sprite,
	)
	Item = newArchetype(
		tags.Item,
		components.Falling,
		components.Transform,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
