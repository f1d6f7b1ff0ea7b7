package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's collider. Its X/Y is the bottom-left corner in
// space coordinates (see SpaceData) and W/H the box size.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
