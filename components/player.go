package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Horizontal distance per tick while a direction is held
	Speed float64
	// -1 left, 1 right; kept from the last movement for sprite facing
	Direction float64
	// Items collected this session, by effect
	SpeedUps int
	BigUps   int
}

var Player = donburi.NewComponentType[PlayerData]()
