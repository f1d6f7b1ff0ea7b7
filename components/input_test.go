package components

import (
	"testing"

	cfg "github.com/automoto/dodgefall/config"
)

func TestInputActionEdges(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionMoveLeft] = true
	if got := in.Action(cfg.ActionMoveLeft); !got.Pressed || !got.JustPressed || got.JustReleased {
		t.Errorf("first frame = %+v", got)
	}

	in.Advance()
	in.Current[cfg.ActionMoveLeft] = true
	if got := in.Action(cfg.ActionMoveLeft); !got.Pressed || got.JustPressed {
		t.Errorf("held frame = %+v", got)
	}

	in.Advance()
	if got := in.Action(cfg.ActionMoveLeft); got.Pressed || !got.JustReleased {
		t.Errorf("release frame = %+v", got)
	}
}
