package config

import (
	"testing"
	"time"
)

func TestFieldToScreen(t *testing.T) {
	f := FieldConfig{Width: 800, Height: 720}

	tests := []struct {
		x, y, sx, sy float64
	}{
		{0, 0, 400, 360},
		{-400, 360, 0, 0},
		{400, -360, 800, 720},
		{0, -300, 400, 660},
	}
	for _, tt := range tests {
		sx, sy := f.ToScreen(tt.x, tt.y)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
		}
	}
	if f.Bottom() != -360 {
		t.Errorf("Bottom = %v, want -360", f.Bottom())
	}
}

func TestTickDuration(t *testing.T) {
	if got := (&Config{TPS: 60}).TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration = %v", got)
	}
	if got := (&Config{}).TickDuration(); got != time.Second/60 {
		t.Errorf("zero TPS TickDuration = %v, want the 60 TPS default", got)
	}
}
