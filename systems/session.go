package systems

import (
	"io"
	"math/rand"
	"time"

	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AssetLookup is the read-only view of the asset registry the simulation needs.
type AssetLookup interface {
	Image(c cfg.Category, key string) (assets.ImageHandle, bool)
	Sound(c cfg.Category, key string) (assets.SoundHandle, bool)
	RandomDamageSound(r *rand.Rand) (assets.SoundHandle, bool)
}

// Session is one game: the world holding every active entity, the player,
// and the spawn timers. It is owned by a single goroutine.
type Session struct {
	World  donburi.World
	Player *donburi.Entry
	Assets AssetLookup
	Rand   *rand.Rand
	Field  cfg.FieldConfig
	Logger *log.Logger

	AttackTimer SpawnTimer
	ItemTimer   SpawnTimer

	tick int
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick      int
	Effects   []Effect
	Spawned   []*donburi.Entry
	Despawned int
}

// NewSession creates a world with the player at its start position and
// both spawn timers armed. A nil logger discards output.
func NewSession(lookup AssetLookup, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := donburi.NewWorld()
	s := &Session{
		World:  w,
		Assets: lookup,
		Rand:   rng,
		Field:  cfg.Field,
		Logger: logger,
		AttackTimer: NewRandomTimer(
			cfg.Spawn.AttackInitialInterval,
			cfg.Spawn.AttackIntervalMin,
			cfg.Spawn.AttackIntervalMax,
		),
		ItemTimer: NewFixedTimer(cfg.Spawn.ItemInterval),
	}

	factory.CreateSpace(w, s.Field)
	s.Player = factory.CreatePlayer(w, cfg.Player.StartX, cfg.Player.StartY)
	GetOrCreateAudio(w)

	CollisionOccurred.Subscribe(w, flashOnCollision)
	CollisionOccurred.Subscribe(w, s.logCollision)

	return s
}

// Step advances the session by one tick. The pass order is fixed:
// player movement, falling motion, collision, event dispatch, off-field
// despawn, effects, then the spawn timers. Entities spawned here are first
// collision-tested on the next tick.
func (s *Session) Step(in *components.InputData, dt time.Duration) StepResult {
	if s.Over() {
		return StepResult{Tick: s.tick}
	}
	s.tick++

	res := StepResult{Tick: s.tick}

	MovePlayer(s, in)
	MoveFalling(s.World)
	res.Effects = ResolveCollisions(s)
	events.ProcessAllEvents(s.World)
	res.Despawned = DespawnOffField(s.World, s.Field)
	UpdateEffects(s.World, dt)

	if e := TickAttackSpawner(s, dt); e != nil {
		res.Spawned = append(res.Spawned, e)
	}
	if e := TickItemSpawner(s, dt); e != nil {
		res.Spawned = append(res.Spawned, e)
	}

	return res
}

// Tick returns the number of simulated ticks.
func (s *Session) Tick() int {
	return s.tick
}

// Over reports whether the player has run out of health. The session stops
// advancing once it is over.
func (s *Session) Over() bool {
	return components.Health.Get(s.mustPlayer()).Current <= 0
}

// HP returns the player's current health.
func (s *Session) HP() int {
	return components.Health.Get(s.mustPlayer()).Current
}

// mustPlayer returns the player entry. A session without a live player is
// a programming error.
func (s *Session) mustPlayer() *donburi.Entry {
	if s.Player == nil || !s.Player.Valid() {
		panic("systems: session has no player entity")
	}
	return s.Player
}

func (s *Session) logCollision(w donburi.World, e Effect) {
	s.Logger.Debug("collision",
		"kind", e.Kind,
		"category", e.Category,
		"hp", e.HPAfter,
		"tick", s.tick,
	)
}
