package scenes

import (
	"fmt"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/fonts"
	"github.com/automoto/dodgefall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// hudRenderer draws the health bar and, once the session is over, the
// game over overlay.
func hudRenderer(s *systems.Session, muted func() bool) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		hp := components.Health.Get(s.Player)
		ui := cfg.UI

		vector.FillRect(screen,
			ui.HealthBarMargin, ui.HealthBarMargin,
			ui.HealthBarWidth, ui.HealthBarHeight,
			ui.HealthBarBgColor, false)

		ratio := float32(hp.Current) / float32(hp.Max)
		vector.FillRect(screen,
			ui.HealthBarMargin, ui.HealthBarMargin,
			ui.HealthBarWidth*ratio, ui.HealthBarHeight,
			ui.HealthBarFgColor, false)

		label := fmt.Sprintf("HP %d/%d", hp.Current, hp.Max)
		if muted() {
			label += "  [muted]"
		}
		textY := int(ui.HealthBarMargin*2 + ui.HealthBarHeight + float32(ui.HUDFontSize))
		text.Draw(screen, label, fonts.HUD.Get(), int(ui.HealthBarMargin), textY, ui.HUDTextColor)

		if s.Over() {
			drawGameOver(screen)
		}
	}
}

func drawGameOver(screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	title := "GAME OVER"
	titleWidth := len(title) * int(cfg.UI.HUDFontSize) // Approximate width for title font
	x := (int(width) - titleWidth) / 2
	text.Draw(screen, title, fonts.Title.Get(), x, int(height/2), cfg.Red)
}
