package systems

import (
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
)

// MovePlayer applies the held direction keys. Both directions are evaluated
// against the position at the start of the tick, so holding both cancels
// out. The result is clamped to the field's movement limits.
func MovePlayer(s *Session, in *components.InputData) {
	player := s.mustPlayer()
	if in == nil {
		return
	}

	data := components.Player.Get(player)
	t := components.Transform.Get(player)
	left, right := s.Field.PlayerMoveLimitLeft, s.Field.PlayerMoveLimitRight

	x := t.Position.X
	dx := 0.0
	if in.Current[cfg.ActionMoveRight] && x < right {
		dx += data.Speed
	}
	if in.Current[cfg.ActionMoveLeft] && x > left {
		dx -= data.Speed
	}

	t.Position.X = clampFloat(x+dx, left, right)
	switch {
	case dx > 0:
		data.Direction = 1
	case dx < 0:
		data.Direction = -1
	}
	components.Sprite.Get(player).FlipX = data.Direction < 0

	factory.SyncCollider(player)
}

// clampFloat constrains a value to the range [min, max]
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
