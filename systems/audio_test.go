package systems

import (
	"testing"

	"github.com/automoto/dodgefall/assets"
	"github.com/yohamta/donburi"
)

func TestSFXQueue(t *testing.T) {
	w := donburi.NewWorld()

	if got := DrainSFX(w); got != nil {
		t.Errorf("drain without singleton = %v, want nil", got)
	}
	if PendingSFX(w) != 0 {
		t.Error("pending without singleton")
	}

	PlaySFX(w, assets.SoundHandle{Key: "normal"})
	PlaySFX(w, assets.SoundHandle{Key: "recovery"})
	if n := PendingSFX(w); n != 2 {
		t.Fatalf("pending = %d, want 2", n)
	}

	got := DrainSFX(w)
	if len(got) != 2 || got[0].Key != "normal" || got[1].Key != "recovery" {
		t.Errorf("drained %v", got)
	}
	if PendingSFX(w) != 0 {
		t.Error("queue not emptied")
	}
}

func TestGetOrCreateAudioIsSingleton(t *testing.T) {
	w := donburi.NewWorld()
	a := GetOrCreateAudio(w)
	b := GetOrCreateAudio(w)
	if a != b {
		t.Error("second call created another audio entity")
	}
}
