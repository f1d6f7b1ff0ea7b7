package systems

import (
	"time"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances flash tweens and clears finished ones.
func UpdateEffects(w donburi.World, dt time.Duration) {
	step := float32(dt.Seconds())
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, done := flash.Tween.Update(step)
		flash.Intensity = v
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

// flashOnCollision starts a red flash on damage and a green one on pickup.
func flashOnCollision(w donburi.World, e Effect) {
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}

	duration, color := cfg.Effects.PickupFlashSeconds, cfg.Effects.PickupFlashColor
	if e.Category == cfg.CategoryAttack {
		duration, color = cfg.Effects.DamageFlashSeconds, cfg.Effects.DamageFlashColor
	}
	if duration <= 0 {
		return
	}

	components.Flash.SetValue(player, components.FlashData{
		Tween:     gween.New(1, 0, duration, ease.OutQuad),
		Intensity: 1,
		Color:     color,
	})
}
