package system

import (
	"github.com/milk9111/ballgame/assets"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"go.uber.org/zap"
)

type SpawnTimerSystem struct{}

func NewSpawnTimerSystem() *SpawnTimerSystem {
	return &SpawnTimerSystem{}
}

func (s *SpawnTimerSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(_ ecs.Entity, st *component.SpawnTimer) {
		st.Timer.Tick(dt)
	})
}

// WaveSystem spawns one wave of its kind for every period the matching
// timer completed this frame.
type WaveSystem struct {
	kind     component.SpawnKind
	sound    string
	spawner  *entity.Spawner
	director Director
	log      *zap.Logger
}

func NewStarWaveSystem(spawner *entity.Spawner, director Director, log *zap.Logger) *WaveSystem {
	return &WaveSystem{kind: component.SpawnStar, sound: assets.SoundSelect, spawner: spawner, director: director, log: log}
}

func NewEnemyWaveSystem(spawner *entity.Spawner, director Director, log *zap.Logger) *WaveSystem {
	return &WaveSystem{kind: component.SpawnEnemy, sound: assets.SoundDrop, spawner: spawner, director: director, log: log}
}

// SetDirector swaps the wave director, typically after a script reload.
func (s *WaveSystem) SetDirector(d Director) {
	if d == nil {
		d = FixedDirector{}
	}
	s.director = d
}

func (s *WaveSystem) Update(w *ecs.World) {
	score := 0
	if sc, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind()); ok {
		score = sc.Value
	}

	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(_ ecs.Entity, st *component.SpawnTimer) {
		if st.Kind != s.kind {
			return
		}
		for range st.Timer.TimesFinished() {
			st.Wave++
			if !s.spawnWave(w, st.Wave, score) {
				return
			}
		}
	})
}

// spawnWave spawns wave number wave and reports whether it succeeded.
func (s *WaveSystem) spawnWave(w *ecs.World, wave, score int) bool {
	base := s.baseCount()
	n, err := s.director.WaveSize(s.kind, wave, score, base)
	if err != nil {
		s.log.Warn("director failed, using base wave size", zap.String("kind", string(s.kind)), zap.Error(err))
		n = base
	}

	entity.RequestSound(w, s.sound)
	var spawnErr error
	switch s.kind {
	case component.SpawnStar:
		_, spawnErr = s.spawner.SpawnStars(w, n, true)
	case component.SpawnEnemy:
		_, spawnErr = s.spawner.SpawnEnemies(w, n, true)
	}
	if spawnErr != nil {
		s.log.Error("spawn wave failed", zap.String("kind", string(s.kind)), zap.Error(spawnErr))
		return false
	}
	s.log.Debug("spawned wave", zap.String("kind", string(s.kind)), zap.Int("wave", wave), zap.Int("count", n))
	return true
}

func (s *WaveSystem) baseCount() int {
	settings := s.spawner.Settings()
	if s.kind == component.SpawnEnemy {
		return settings.Enemy.PerSpawn
	}
	return settings.Star.PerSpawn
}
