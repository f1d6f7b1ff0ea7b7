package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the center position and size of an entity.
type TransformData struct {
	Position math.Vec2
	Scale    math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
