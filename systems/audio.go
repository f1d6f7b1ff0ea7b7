package systems

import (
	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/components"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a one-shot sound effect for the audio backend.
func PlaySFX(w donburi.World, sound assets.SoundHandle) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns the queued sounds and empties the queue. The returned
// slice is only valid until the next PlaySFX call.
func DrainSFX(w donburi.World) []assets.SoundHandle {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audioData := components.Audio.Get(entry)
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return pending
}

// PendingSFX reports how many sounds are queued.
func PendingSFX(w donburi.World) int {
	entry, ok := components.Audio.First(w)
	if !ok {
		return 0
	}
	return len(components.Audio.Get(entry).PendingSFX)
}

// GetOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]assets.SoundHandle, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
