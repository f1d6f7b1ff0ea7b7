package components

import (
	"github.com/automoto/dodgefall/assets"
	"github.com/yohamta/donburi"
)

// SpriteData references the image drawn for an entity. Entities without an
// image are drawn as filled rectangles.
type SpriteData struct {
	Image *assets.ImageHandle
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
