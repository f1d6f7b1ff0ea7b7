package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/automoto/dodgefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debugRenderer outlines every collider and prints simulation counters.
func debugRenderer(s *systems.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		space := factory.SpaceOf(e.World)
		drawOccupiedCells(screen, s.Field, space)

		components.Object.Each(e.World, func(entry *donburi.Entry) {
			obj := components.Object.Get(entry)

			// Collider corner is bottom-left in space coordinates
			x, y := s.Field.ToScreen(space.ToWorld(obj.X, obj.Y+obj.H))

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvAttack) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvItem) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		})

		oldest := 0
		components.Falling.Each(e.World, func(entry *donburi.Entry) {
			oldest = max(oldest, components.Falling.Get(entry).Age)
		})

		player := components.Player.Get(s.Player)
		msg := fmt.Sprintf("tick %d  active %d  oldest %d  tps %.0f\nspeedups %d  bigs %d",
			s.Tick(), systems.ActiveCount(e.World), oldest, ebiten.ActualTPS(),
			player.SpeedUps, player.BigUps)
		ebitenutil.DebugPrintAt(screen, msg, 10, cfg.C.Height-40)
	}
}

// drawOccupiedCells shades every grid cell holding at least one collider.
func drawOccupiedCells(screen *ebiten.Image, field cfg.FieldConfig, space *components.SpaceData) {
	cw, ch := float64(space.CellWidth), float64(space.CellHeight)
	for cy, row := range space.Cells {
		for cx, cell := range row {
			if !cell.Occupied() {
				continue
			}
			x, y := field.ToScreen(space.ToWorld(float64(cx)*cw, float64(cy+1)*ch))
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(cw), float32(ch), color.RGBA{255, 255, 0, 40}, false)
		}
	}
}
