package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Add changes Current by delta, clamped to [0, Max], and returns the
// values before and after.
func (h *HealthData) Add(delta int) (before, after int) {
	before = h.Current
	h.Current += delta
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current < 0 {
		h.Current = 0
	}
	return before, h.Current
}

var Health = donburi.NewComponentType[HealthData]()
