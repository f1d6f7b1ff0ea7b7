package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    *components.InputData
		want  float64
	}{
		{"no input", 0, nil, 0},
		{"nothing held", 0, held(), 0},
		{"right", 0, held(cfg.ActionMoveRight), 7.5},
		{"left", 0, held(cfg.ActionMoveLeft), -7.5},
		{"both cancel", 0, held(cfg.ActionMoveLeft, cfg.ActionMoveRight), 0},
		{"right clamps", 372, held(cfg.ActionMoveRight), 375},
		{"left clamps", -370, held(cfg.ActionMoveLeft), -375},
		{"right at limit", 375, held(cfg.ActionMoveRight), 375},
		{"left at limit", -375, held(cfg.ActionMoveLeft), -375},
		// only the left branch passes its limit check
		{"both at right limit", 375, held(cfg.ActionMoveLeft, cfg.ActionMoveRight), 367.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			setPlayerX(s, tt.start)

			MovePlayer(s, tt.in)

			if got := playerX(s); got != tt.want {
				t.Errorf("x = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovePlayerSyncsCollider(t *testing.T) {
	s := newTestSession(t, nil)
	MovePlayer(s, held(cfg.ActionMoveRight))

	obj := components.Object.Get(s.Player)
	if obj.X != 7.5-20 {
		t.Errorf("collider x = %v, want %v", obj.X, 7.5-20)
	}
}

func TestMovePlayerFacing(t *testing.T) {
	s := newTestSession(t, nil)

	MovePlayer(s, held(cfg.ActionMoveLeft))
	if !components.Sprite.Get(s.Player).FlipX {
		t.Error("sprite should flip when moving left")
	}

	// standing still keeps the last facing
	MovePlayer(s, held())
	if !components.Sprite.Get(s.Player).FlipX {
		t.Error("facing reset without movement")
	}

	MovePlayer(s, held(cfg.ActionMoveRight))
	if components.Sprite.Get(s.Player).FlipX {
		t.Error("sprite should face right again")
	}
}

func TestPlayerStaysInsideLimits(t *testing.T) {
	s := newTestSession(t, nil)
	r := rand.New(rand.NewSource(42))
	left, right := cfg.Field.PlayerMoveLimitLeft, cfg.Field.PlayerMoveLimitRight

	for i := 0; i < 5000; i++ {
		in := &components.InputData{}
		in.Current[cfg.ActionMoveLeft] = r.Intn(2) == 0
		in.Current[cfg.ActionMoveRight] = r.Intn(3) == 0
		MovePlayer(s, in)

		if x := playerX(s); x < left || x > right {
			t.Fatalf("tick %d: x = %v outside [%v, %v]", i, x, left, right)
		}
	}
}

func TestMovePlayerReachesLimitExactly(t *testing.T) {
	s := newTestSession(t, nil)
	for i := 0; i < 60; i++ {
		MovePlayer(s, held(cfg.ActionMoveRight))
	}
	if got := playerX(s); got != 375 {
		t.Errorf("x = %v, want 375", got)
	}
}
