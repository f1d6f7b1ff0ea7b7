package components

import (
	"github.com/automoto/dodgefall/assets"
	"github.com/yohamta/donburi"
)

// AudioData stores the one-shot sounds queued this tick (singleton component).
// The audio backend drains PendingSFX after the simulation step.
type AudioData struct {
	PendingSFX []assets.SoundHandle
}

var Audio = donburi.NewComponentType[AudioData]()
