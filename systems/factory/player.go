package factory

import (
	"github.com/automoto/dodgefall/archetypes"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centered at (x, y) with full health. The
// world's space must already exist.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	components.Transform.SetValue(player, components.TransformData{
		Position: math.NewVec2(x, y),
		Scale:    math.NewVec2(width, height),
	})

	newCollider(player, width, height, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed:     cfg.Player.Speed,
		Direction: 1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
