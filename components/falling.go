package components

import (
	cfg "github.com/automoto/dodgefall/config"
	"github.com/yohamta/donburi"
)

// FallingData marks an attack or item that descends every tick.
type FallingData struct {
	Kind cfg.KindID
	// Ticks since spawn
	Age int
}

var Falling = donburi.NewComponentType[FallingData]()
