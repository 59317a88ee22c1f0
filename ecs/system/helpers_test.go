package system

import (
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"github.com/milk9111/ballgame/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (k *fakeKeys) IsPressed(key ebiten.Key) bool     { return k.held[key] }
func (k *fakeKeys) IsJustPressed(key ebiten.Key) bool { return k.just[key] }

// tap marks key as pressed this frame only.
func (k *fakeKeys) tap(key ebiten.Key) {
	k.just[key] = true
}

func (k *fakeKeys) release() {
	k.just = map[ebiten.Key]bool{}
}

type fakeSounds struct {
	played []string
}

func (s *fakeSounds) Play(name string) error {
	s.played = append(s.played, name)
	return nil
}

type fakeSaver struct {
	saves [][]component.HighScoreEntry
}

func (s *fakeSaver) Save(entries []component.HighScoreEntry) error {
	s.saves = append(s.saves, append([]component.HighScoreEntry(nil), entries...))
	return nil
}

type fakeClipboard struct {
	text []string
}

func (c *fakeClipboard) WriteText(s string) error {
	c.text = append(c.text, s)
	return nil
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func loadSettings(t *testing.T) *prefabs.Settings {
	t.Helper()
	settings, err := prefabs.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return settings
}

// newGameWorld returns a world holding the game singletons and a seeded
// spawner.
func newGameWorld(t *testing.T) (*ecs.World, *prefabs.Settings, *entity.Spawner) {
	t.Helper()
	settings := loadSettings(t)
	w := ecs.NewWorld()
	if _, err := entity.NewGameState(w, settings, nil); err != nil {
		t.Fatalf("game state: %v", err)
	}
	return w, settings, entity.NewSpawner(settings, rand.New(rand.NewPCG(11, 13)))
}

func inputOf(t *testing.T, w *ecs.World) *component.Input {
	t.Helper()
	in, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok {
		t.Fatal("missing input singleton")
	}
	return in
}

func scoreOf(t *testing.T, w *ecs.World) *component.Score {
	t.Helper()
	sc, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind())
	if !ok {
		t.Fatal("missing score singleton")
	}
	return sc
}

// place creates a bare entity from a prefab at (x, y).
func place(t *testing.T, w *ecs.World, prefab string, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.BuildEntity(w, prefab)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.SetEntityTransform(w, e, x, y); err != nil {
		t.Fatal(err)
	}
	return e
}

func soundRequests(w *ecs.World) []string {
	var out []string
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(_ ecs.Entity, req *component.SoundRequest) {
		out = append(out, req.Name)
	})
	return out
}

func countOf(w *ecs.World, kinds ...component.Kind) int {
	return len(w.Query(kinds...))
}
