package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/media"
	"github.com/automoto/dodgefall/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerField ecs.LayerID = iota
	layerHUD
	layerDebug
)

// FieldScene runs one session: the player dodging falling attacks and
// collecting items until health runs out.
type FieldScene struct {
	ecs     *ecs.ECS
	session *systems.Session
	sfx     *media.Player
	images  *media.ImageCache
	store   *systems.SettingsStore
	logger  *log.Logger

	// Draw collider outlines and counters
	Debug bool

	once sync.Once
	quit bool
}

func NewFieldScene(session *systems.Session, sfx *media.Player, images *media.ImageCache, store *systems.SettingsStore, logger *log.Logger) *FieldScene {
	return &FieldScene{
		session: session,
		sfx:     sfx,
		images:  images,
		store:   store,
		logger:  logger,
	}
}

func (fs *FieldScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FieldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave.
func (fs *FieldScene) Quit() bool {
	return fs.quit
}

func (fs *FieldScene) configure() {
	e := ecs.NewECS(fs.session.World)

	// Input runs first so the step sees this frame's keys
	e.AddSystem(updateInput)
	e.AddSystem(fs.updateControls)
	e.AddSystem(fs.updateSession)
	e.AddSystem(fs.updateAudio)

	e.AddRenderer(layerField, spriteRenderer(fs.images, fs.session.Field))
	e.AddRenderer(layerHUD, hudRenderer(fs.session, func() bool { return fs.sfx.Settings().Muted }))
	if fs.Debug {
		e.AddRenderer(layerDebug, debugRenderer(fs.session))
	}

	fs.ecs = e
}

func (fs *FieldScene) updateControls(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if input.Action(cfg.ActionQuit).JustPressed {
		fs.quit = true
	}
	if input.Action(cfg.ActionToggleMute).JustPressed {
		fs.sfx.ToggleMute()
		_ = fs.store.Save(systems.SettingsFrom(fs.sfx.Settings()))
	}
}

func (fs *FieldScene) updateSession(e *ecs.ECS) {
	wasOver := fs.session.Over()
	res := fs.session.Step(getOrCreateInput(e), cfg.C.TickDuration())

	if !wasOver && fs.session.Over() {
		fs.logger.Info("game over", "tick", res.Tick)
	}
}

func (fs *FieldScene) updateAudio(e *ecs.ECS) {
	fs.sfx.Drain(e.World)
}
