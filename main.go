// dodgefall is a single-screen arcade game: move left and right to dodge
// falling attacks and collect items until your health runs out.
//
// Usage:
//
//	dodgefall [flags]
//
// Flags:
//
//	--assets <dir>    - Asset root (default: assets)
//	--config <path>   - YAML file overriding the built-in configuration
//	--seed <value>    - RNG seed for reproducible spawns (0 = time based)
//	--mute            - Start with sound effects muted
//	--volume <0..1>   - Sound effect volume
package main

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/dodgefall/assets"
	"github.com/automoto/dodgefall/config"
	"github.com/automoto/dodgefall/fonts"
	"github.com/automoto/dodgefall/media"
	"github.com/automoto/dodgefall/scenes"
	"github.com/automoto/dodgefall/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var (
	flagAssets string
	flagConfig string
	flagSeed   int64
	flagMute   bool
	flagVolume float64
	flagDebug  bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(interface{ Quit() bool }); ok && q.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "dodgefall",
	Short: "Dodge falling attacks, collect items",
	Long: `dodgefall opens a window where attacks and items fall from the top.
Touching an attack costs 10 HP, a potion heals 10. The game ends at 0 HP.

Controls:
  Left/A, Right/D - Move
  M               - Toggle sound
  Esc             - Quit

Examples:
  dodgefall
  dodgefall --assets ./assets --seed 42
  dodgefall --config ./configs/dodgefall.yaml --volume 0.5`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset root directory (default from config: assets)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Sound effect volume (0-1)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every collision and draw colliders")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodgefall",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	store, err := systems.OpenSettings("dodgefall", logger)
	if err != nil {
		logger.Warn("could not open settings store", "err", err)
	}
	saved, err := store.Load()
	if err != nil {
		logger.Warn("could not load settings", "err", err)
	}
	saved.Apply(&config.Audio)

	// Flags given on the command line win over saved settings
	if cmd.Flags().Changed("volume") {
		config.Audio.SFXVolume = min(max(flagVolume, 0), 1)
	}
	if cmd.Flags().Changed("mute") {
		config.Audio.Muted = flagMute
	}

	root := config.Assets.Root
	if flagAssets != "" {
		root = flagAssets
	}
	registry, err := assets.Scan(os.DirFS(root), config.Assets)
	if err != nil {
		logger.Fatal("asset scan failed", "root", root, "err", err)
	}
	images, sounds := registry.Counts()
	logger.Info("assets scanned", "root", root, "images", images, "sounds", sounds)

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("session seed", "seed", seed)

	session := systems.NewSession(registry, rand.New(rand.NewSource(seed)), logger)

	sfx := media.NewPlayer(audio.NewContext(config.Audio.SampleRate), registry.FS(), config.Audio, logger)
	sfx.Preload(registry.Sounds())
	imageCache := media.NewImageCache(registry.FS(), logger)

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewFieldScene(session, sfx, imageCache, store, logger)
	scene.Debug = flagDebug

	game := &Game{
		scene: scene,
	}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	logger.Info("session ended", "ticks", session.Tick(), "hp", session.HP())
	return store.Save(systems.SettingsFrom(sfx.Settings()))
}
