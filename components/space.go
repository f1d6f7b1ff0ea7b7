package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broad-phase grid every collider is registered in. Cells
// start at the field's bottom-left corner, so world positions are shifted
// by the origin before they reach resolv.
type SpaceData struct {
	*resolv.Space
	OriginX, OriginY float64
}

// ToSpace converts a world position to grid coordinates.
func (s *SpaceData) ToSpace(x, y float64) (float64, float64) {
	return x - s.OriginX, y - s.OriginY
}

// ToWorld converts grid coordinates back to a world position.
func (s *SpaceData) ToWorld(x, y float64) (float64, float64) {
	return x + s.OriginX, y + s.OriginY
}

var Space = donburi.NewComponentType[SpaceData]()
