package scenes

import (
	"image/color"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/media"
	"github.com/automoto/dodgefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var drawOp = &ebiten.DrawImageOptions{}

var spriteQuery = donburi.NewQuery(filter.Contains(components.Transform, components.Sprite))

// spriteRenderer draws every sprite at its transform, scaled to its size.
func spriteRenderer(images *media.ImageCache, field cfg.FieldConfig) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		spriteQuery.Each(e.World, func(entry *donburi.Entry) {
			drawSprite(screen, entry, images, field)
		})
	}
}

func drawSprite(screen *ebiten.Image, entry *donburi.Entry, images *media.ImageCache, field cfg.FieldConfig) {
	t := components.Transform.Get(entry)
	sprite := components.Sprite.Get(entry)

	w, h := t.Scale.X, t.Scale.Y
	cx, cy := field.ToScreen(t.Position.X, t.Position.Y)

	var flash *components.FlashData
	if entry.HasComponent(components.Flash) {
		flash = components.Flash.Get(entry)
	}

	img := images.Get(sprite.Image)
	if img == nil {
		c := placeholderColor(entry)
		if flash != nil && flash.Active() {
			c = lerpColor(c, flash.Color, flash.Intensity)
		}
		vector.FillRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), c, false)
		return
	}

	bounds := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	drawOp.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	if sprite.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(cx, cy)

	if flash != nil && flash.Active() {
		r, g, b := flashScale(flash.Color, flash.Intensity)
		drawOp.ColorScale.Scale(r, g, b, 1)
	}

	screen.DrawImage(img, drawOp)
}

func placeholderColor(entry *donburi.Entry) color.RGBA {
	switch {
	case entry.HasComponent(tags.Attack):
		return cfg.UI.AttackColor
	case entry.HasComponent(tags.Item):
		return cfg.UI.ItemColor
	}
	return cfg.UI.PlayerColor
}

// flashScale returns per-channel multipliers that tint toward c.
func flashScale(c color.RGBA, intensity float32) (r, g, b float32) {
	ch := func(v uint8) float32 {
		return 1 - intensity + intensity*float32(v)/255
	}
	return ch(c.R), ch(c.G), ch(c.B)
}

func lerpColor(from, to color.RGBA, t float32) color.RGBA {
	ch := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{R: ch(from.R, to.R), G: ch(from.G, to.G), B: ch(from.B, to.B), A: 255}
}
