package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks a sprite flash (damage or pickup feedback).
// Intensity fades from 1 to 0 as Tween runs.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
	Color     color.RGBA
}

// Active reports whether the flash is still visible.
func (f *FlashData) Active() bool {
	return f.Tween != nil && f.Intensity > 0
}

var Flash = donburi.NewComponentType[FlashData]()
