package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"github.com/milk9111/ballgame/prefabs"
	"go.uber.org/zap"
)

type PipelineConfig struct {
	Settings  *prefabs.Settings
	Spawner   *entity.Spawner
	Director  Director
	Keys      KeySource
	Sounds    SoundPlayer
	Store     HighScoreSaver
	Clipboard TextWriter
	Log       *zap.Logger
}

// Pipeline is the installed game: the two state machines plus the systems
// the game loop talks to directly.
type Pipeline struct {
	App        *AppStateMachine
	Sim        *SimulationStateMachine
	Exit       *ExitSystem
	StarWaves  *WaveSystem
	EnemyWaves *WaveSystem

	settings *prefabs.Settings
	log      *zap.Logger
}

// VolumeSetter adjusts playback volume, normally the sound bank.
type VolumeSetter interface {
	SetVolume(volume float64)
}

// Install registers every system on w in frame order. Input and state keys
// run first, gameplay only while a run is playing, bookkeeping after that,
// and the state machines apply queued transitions last.
func Install(w *ecs.World, cfg PipelineConfig) *Pipeline {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	director := cfg.Director
	if director == nil {
		director = FixedDirector{}
	}

	p := &Pipeline{
		App:  ecs.NewState(component.AppStateMainMenu),
		Sim:  ecs.NewState(component.SimulationRunning),
		Exit: NewExitSystem(log),

		settings: cfg.Settings,
		log:      log,
	}
	p.StarWaves = NewStarWaveSystem(cfg.Spawner, director, log)
	p.EnemyWaves = NewEnemyWaveSystem(cfg.Spawner, director, log)

	NewRunLifecycle(p.Sim, cfg.Spawner, log).Register(p.App)

	inGame := ecs.InState(p.App, component.AppStateGame)
	playing := Playing(p.App, p.Sim)

	w.AddSystem(NewInputSystem(cfg.Keys))
	w.AddSystem(p.Exit)
	w.AddSystem(NewAppStateKeysSystem(p.App, log))
	w.AddSystem(NewSimulationToggleSystem(p.Sim, log), inGame)

	w.AddSystem(NewPlayerMovementSystem(cfg.Settings, log), playing)
	w.AddSystem(NewPlayerConfineSystem(), playing)
	w.AddSystem(NewEnemyMovementSystem(), playing)
	w.AddSystem(NewEnemyConfineSystem(), playing)
	w.AddSystem(NewEnemyBounceSystem(cfg.Settings), playing)
	w.AddSystem(NewEnemyHitPlayerSystem(log), playing)
	w.AddSystem(NewPlayerStarSystem(cfg.Settings, log), playing)
	w.AddSystem(NewSpawnTimerSystem(), playing)
	w.AddSystem(p.StarWaves, playing)
	w.AddSystem(p.EnemyWaves, playing)
	w.AddSystem(NewTweenSystem(), playing)

	w.AddSystem(NewScoreLogSystem(log), inGame)
	w.AddSystem(NewGameOverSystem(p.App, log), inGame)
	w.AddSystem(NewHighScoreSystem(cfg.Store, log))
	w.AddSystem(NewCopyScoreSystem(cfg.Clipboard, log), ecs.InState(p.App, component.AppStateGameOver))
	w.AddSystem(NewAudioSystem(cfg.Sounds, log))

	w.AddSystem(p.App)
	w.AddSystem(p.Sim)

	w.AddRenderSystem(NewRenderSystem(log))
	w.AddRenderSystem(NewHUDSystem(p.App, p.Sim))
	return p
}

// SetDirector replaces the director of both wave systems.
func (p *Pipeline) SetDirector(d Director) {
	p.StarWaves.SetDirector(d)
	p.EnemyWaves.SetDirector(d)
}

// Reload copies fresh over the shared settings and pushes the change into
// the running game: the playfield and spawn timers, the volume and the wave
// director. Actors already spawned keep their values.
func (p *Pipeline) Reload(w *ecs.World, fresh *prefabs.Settings, volume VolumeSetter) {
	if fresh == nil {
		return
	}
	if p.settings == nil {
		p.settings = fresh
	} else {
		*p.settings = *fresh
	}
	entity.ApplySettings(w, p.settings)
	if volume != nil {
		volume.SetVolume(p.settings.Audio.Volume)
	}
	p.SetDirector(LoadDirector(p.settings.DirectorScript, p.log))
	p.log.Info("settings reloaded",
		zap.Int("width", p.settings.Window.Width),
		zap.Int("height", p.settings.Window.Height),
	)
}
