package systems

import (
	"testing"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
)

func TestMoveFallingPerTick(t *testing.T) {
	for _, kind := range append(append([]cfg.KindID{}, cfg.AttackKinds...), cfg.ItemKinds...) {
		t.Run(kind.String(), func(t *testing.T) {
			w := newWorld()
			e := factory.CreateFalling(w, kind, 10, 350, nil)

			if pos := components.Transform.Get(e).Position; pos.X != 10 || pos.Y != 350 {
				t.Fatalf("spawned at %v, want (10, 350)", pos)
			}

			const n = 5
			for i := 0; i < n; i++ {
				MoveFalling(w)
			}

			want := 350 - n*kind.Speed()
			tr := components.Transform.Get(e)
			if tr.Position.Y != want || tr.Position.X != 10 {
				t.Errorf("position = %v, want (10, %v)", tr.Position, want)
			}
			if age := components.Falling.Get(e).Age; age != n {
				t.Errorf("age = %d, want %d", age, n)
			}
			_, h := kind.Scale()
			if obj := components.Object.Get(e); obj.Y != want-h/2-cfg.Field.Bottom() {
				t.Errorf("collider y = %v, want %v", obj.Y, want-h/2-cfg.Field.Bottom())
			}
		})
	}
}

func TestMoveFallingLeavesPlayer(t *testing.T) {
	w := newWorld()
	p := factory.CreatePlayer(w, 0, -300)
	MoveFalling(w)

	if y := components.Transform.Get(p).Position.Y; y != -300 {
		t.Errorf("player y = %v, want -300", y)
	}
}

func TestDespawnOffField(t *testing.T) {
	w := newWorld()
	field := cfg.Field

	below := factory.CreateFalling(w, cfg.KindAttackNormal, 0, -380, nil)
	edge := factory.CreateFalling(w, cfg.KindAttackNormal, 0, -372.5, nil)
	inside := factory.CreateFalling(w, cfg.KindItemBig, 0, -350, nil)

	if n := DespawnOffField(w, field); n != 1 {
		t.Errorf("despawned %d, want 1", n)
	}
	if below.Valid() {
		t.Error("entity below the field was kept")
	}
	// collider top exactly at the bottom edge stays for one more tick
	if !edge.Valid() || !inside.Valid() {
		t.Error("entity still touching the field was removed")
	}
	if ActiveCount(w) != 2 {
		t.Errorf("active = %d, want 2", ActiveCount(w))
	}
}

func TestDespawnOffFieldLeavesSpace(t *testing.T) {
	w := newWorld()
	e := factory.CreateFalling(w, cfg.KindAttackNormal, 0, -300, nil)
	obj := components.Object.Get(e).Object

	components.Transform.Get(e).Position.Y = -400
	factory.SyncCollider(e)
	DespawnOffField(w, cfg.Field)

	if e.Valid() {
		t.Fatal("entity below the field was kept")
	}
	if obj.Space != nil {
		t.Error("despawned collider is still in the space")
	}
	if n := len(factory.SpaceOf(w).Objects()); n != 0 {
		t.Errorf("space holds %d colliders, want 0", n)
	}
}

func TestFallingEntityEventuallyDespawns(t *testing.T) {
	w := newWorld()
	e := factory.CreateFalling(w, cfg.KindItemBig, 0, cfg.Field.EntityStartY, nil)

	ticks := 0
	for e.Valid() && ticks < 1000 {
		MoveFalling(w)
		DespawnOffField(w, cfg.Field)
		ticks++
	}
	// collider top 372.5 - 5n drops below -360 at n = 147
	if ticks != 147 {
		t.Errorf("despawned after %d ticks, want 147", ticks)
	}
}
