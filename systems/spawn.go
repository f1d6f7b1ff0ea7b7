package systems

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/yohamta/donburi"
)

// SpawnTimer accumulates simulated time and fires once Interval has elapsed.
// A timer with a non-zero Max draws a new Interval from [Min, Max] after
// every fire; otherwise the interval is fixed.
type SpawnTimer struct {
	Interval time.Duration
	Elapsed  time.Duration
	Min, Max time.Duration

	// Number of interval redraws so far
	Redraws int
}

// NewFixedTimer returns a timer that fires every interval.
func NewFixedTimer(interval time.Duration) SpawnTimer {
	return SpawnTimer{Interval: interval}
}

// NewRandomTimer returns a timer that first fires after initial and then
// after intervals drawn from [min, max].
func NewRandomTimer(initial, min, max time.Duration) SpawnTimer {
	return SpawnTimer{Interval: initial, Min: min, Max: max}
}

// Randomized reports whether the interval is redrawn after each fire.
func (t *SpawnTimer) Randomized() bool {
	return t.Max > 0
}

// Tick adds dt and reports whether the timer fired. A randomized timer
// resets its accumulator on fire, a fixed one keeps the remainder.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Interval {
		return false
	}
	if t.Randomized() {
		t.Elapsed = 0
	} else {
		t.Elapsed -= t.Interval
	}
	return true
}

// Redraw picks the next interval uniformly from [Min, Max].
func (t *SpawnTimer) Redraw(r *rand.Rand) {
	if !t.Randomized() {
		return
	}
	span := int64(t.Max - t.Min)
	next := t.Min
	if span > 0 {
		next += time.Duration(r.Int63n(span + 1))
	}
	t.Interval = next
	t.Redraws++
}

// TickAttackSpawner advances the attack timer and spawns a random attack
// when it fires. The next interval is redrawn on every fire, including
// fires whose spawn is skipped because the image is missing.
func TickAttackSpawner(s *Session, dt time.Duration) *donburi.Entry {
	if !s.AttackTimer.Tick(dt) {
		return nil
	}
	defer s.AttackTimer.Redraw(s.Rand)

	kind := cfg.RandomAttackKind(s.Rand)
	img, ok := s.Assets.Image(cfg.CategoryAttack, kind.ImageKey())
	if !ok {
		return nil
	}

	return factory.CreateFalling(s.World, kind, s.randomSpawnX(), s.Field.EntityStartY, &img)
}

// TickItemSpawner advances the item timer and spawns a random item when it
// fires. A missing image is logged and the spawn skipped.
func TickItemSpawner(s *Session, dt time.Duration) *donburi.Entry {
	if !s.ItemTimer.Tick(dt) {
		return nil
	}

	kind := cfg.RandomItemKind(s.Rand)
	img, ok := s.Assets.Image(cfg.CategoryItem, kind.ImageKey())
	if !ok {
		s.Logger.Warn("item image missing, spawn skipped", "kind", kind, "key", kind.ImageKey())
		return nil
	}

	return factory.CreateFalling(s.World, kind, s.randomSpawnX(), s.Field.EntityStartY, &img)
}

// randomSpawnX draws uniformly from the player's horizontal range.
func (s *Session) randomSpawnX() float64 {
	left, right := s.Field.PlayerMoveLimitLeft, s.Field.PlayerMoveLimitRight
	return left + s.Rand.Float64()*(right-left)
}
