package main

import (
	"image/color"
	"math/rand/v2"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ballgame/assets"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"github.com/milk9111/ballgame/ecs/system"
	"github.com/milk9111/ballgame/prefabs"
	"github.com/milk9111/ballgame/save"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{R: 0x1b, G: 0x1e, B: 0x2b, A: 0xff}

type GameOptions struct {
	// Seed fixes spawn randomness; zero picks a random seed.
	Seed  uint64
	Watch bool
	Log   *zap.Logger
}

type Game struct {
	world    *ecs.World
	pipeline *system.Pipeline
	settings *prefabs.Settings
	sounds   *assets.SoundBank
	clip     system.TextWriter
	watcher  *prefabs.Watcher
	ui       *overlays
	log      *zap.Logger

	quit bool
}

func NewGame(settings *prefabs.Settings, opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Info("starting ballgame", zap.Uint64("seed", seed))

	store, err := save.Open(save.AppName)
	if err != nil {
		log.Warn("high scores will not be saved", zap.Error(err))
		store = save.NewHighScoreStore(nil)
	}
	entries, err := store.Load()
	if err != nil {
		log.Warn("could not load high scores", zap.Error(err))
	}

	g := &Game{
		world:    ecs.NewWorld(),
		settings: settings,
		clip:     newSystemClipboard(log),
		log:      log,
	}
	if _, err := entity.NewGameState(g.world, settings, entries); err != nil {
		return nil, err
	}

	var sounds system.SoundPlayer
	if settings.Audio.Enabled {
		bank, err := assets.NewSoundBank(settings.Audio.Volume)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			g.sounds = bank
			sounds = bank
		}
	}

	spawner := entity.NewSpawner(settings, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	g.pipeline = system.Install(g.world, system.PipelineConfig{
		Settings:  settings,
		Spawner:   spawner,
		Director:  system.LoadDirector(settings.DirectorScript, log),
		Keys:      system.EbitenKeys{},
		Sounds:    sounds,
		Store:     store,
		Clipboard: g.clip,
		Log:       log,
	})
	g.ui = newOverlays(g)

	if opts.Watch {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) startWatcher() {
	dirs := []string{prefabs.Dir}
	scripts := filepath.Join(prefabs.Dir, "scripts")
	if w, err := prefabs.NewWatcher(append(dirs, scripts)...); err == nil {
		g.watcher = w
	} else if w, err := prefabs.NewWatcher(dirs...); err == nil {
		g.watcher = w
	} else {
		g.log.Warn("prefab hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		return
	}
	g.log.Info("watching prefabs for changes", zap.String("dir", prefabs.Dir))
}

// reload re-reads the settings and the director script after an edit on
// disk. Entities already spawned keep their values.
func (g *Game) reload(changed []string) {
	g.log.Info("prefabs changed", zap.Strings("files", changed))

	fresh, err := prefabs.LoadSettings()
	if err != nil {
		g.log.Error("reload settings failed, keeping the old ones", zap.Error(err))
		return
	}
	g.pipeline.Reload(g.world, fresh, g.sounds)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		changed, err := g.watcher.Poll()
		if err != nil {
			g.log.Warn("prefab watcher", zap.Error(err))
		}
		if len(changed) > 0 {
			g.reload(changed)
		}
	}

	g.world.SetDelta(1 / float64(ebiten.TPS()))
	g.world.Update()
	g.ui.Update(g)

	if g.quit || g.pipeline.Exit.Requested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.world.Draw(screen)
	g.ui.Draw(g, screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.settings.Window.Width), float64(g.settings.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) finalScore() int {
	if sc, ok := ecs.FirstComponent(g.world, component.ScoreComponent.Kind()); ok {
		return sc.Value
	}
	return 0
}
