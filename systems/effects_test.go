package systems

import (
	"testing"
	"time"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/yohamta/donburi/features/events"
)

func TestDamageFlash(t *testing.T) {
	s := newTestSession(t, nil)
	spawnOnPlayer(s, cfg.KindAttackNormal)

	ResolveCollisions(s)
	flash := components.Flash.Get(s.Player)
	if flash.Active() {
		t.Fatal("flash started before events were processed")
	}

	events.ProcessAllEvents(s.World)
	if !flash.Active() || flash.Color != cfg.Effects.DamageFlashColor {
		t.Fatalf("flash = %+v, want active damage flash", *flash)
	}

	UpdateEffects(s.World, 100*time.Millisecond)
	if flash.Intensity <= 0 || flash.Intensity >= 1 {
		t.Errorf("intensity = %v mid-flash", flash.Intensity)
	}

	UpdateEffects(s.World, time.Second)
	if flash.Active() || flash.Tween != nil || flash.Intensity != 0 {
		t.Errorf("flash = %+v, want finished", *flash)
	}
}

func TestPickupFlashColor(t *testing.T) {
	s := newTestSession(t, nil)
	spawnOnPlayer(s, cfg.KindItemSpeedUp)

	ResolveCollisions(s)
	events.ProcessAllEvents(s.World)

	flash := components.Flash.Get(s.Player)
	if !flash.Active() || flash.Color != cfg.Effects.PickupFlashColor {
		t.Errorf("flash = %+v, want active pickup flash", *flash)
	}
}

func TestUpdateEffectsWithoutFlash(t *testing.T) {
	s := newTestSession(t, nil)
	UpdateEffects(s.World, time.Second)

	if components.Flash.Get(s.Player).Active() {
		t.Error("idle flash became active")
	}
}
