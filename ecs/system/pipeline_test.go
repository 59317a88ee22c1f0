package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

type harness struct {
	w      *ecs.World
	p      *Pipeline
	keys   *fakeKeys
	sounds *fakeSounds
	saver  *fakeSaver
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	w, settings, spawner := newGameWorld(t)
	h := &harness{w: w, keys: newFakeKeys(), sounds: &fakeSounds{}, saver: &fakeSaver{}}
	h.p = Install(w, PipelineConfig{
		Settings: settings,
		Spawner:  spawner,
		Keys:     h.keys,
		Sounds:   h.sounds,
		Store:    h.saver,
		Log:      zap.NewNop(),
	})
	return h
}

// frame runs one update of dt seconds with the given keys tapped.
func (h *harness) frame(dt float64, tapped ...ebiten.Key) {
	h.keys.release()
	for _, k := range tapped {
		h.keys.tap(k)
	}
	h.w.SetDelta(dt)
	h.w.Update()
}

func (h *harness) clearEnemies() {
	for _, e := range h.w.Query(component.EnemyComponent.Kind()) {
		h.w.DestroyEntity(e)
	}
}

func TestAppStateKeys(t *testing.T) {
	cases := []struct {
		name   string
		from   component.AppState
		toggle bool
		menu   bool
		want   component.AppState
	}{
		{"menu_g_starts", component.AppStateMainMenu, true, false, component.AppStateGame},
		{"game_g_leaves", component.AppStateGame, true, false, component.AppStateMainMenu},
		{"over_g_restarts", component.AppStateGameOver, true, false, component.AppStateGame},
		{"over_m_menu", component.AppStateGameOver, false, true, component.AppStateMainMenu},
		{"menu_m_ignored", component.AppStateMainMenu, false, true, component.AppStateMainMenu},
		{"game_m_ignored", component.AppStateGame, false, true, component.AppStateGame},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, _ := newGameWorld(t)
			app := ecs.NewState(c.from)
			in := inputOf(t, w)
			in.TogglePressed, in.MenuPressed = c.toggle, c.menu

			NewAppStateKeysSystem(app, zap.NewNop()).Update(w)
			app.Apply(w)
			if !app.Is(c.want) {
				t.Fatalf("expected %v, got %v", c.want, app.Get())
			}
		})
	}
}

func TestRunLifecycle(t *testing.T) {
	h := newHarness(t)
	h.frame(0)
	if !h.p.App.Is(component.AppStateMainMenu) || countOf(h.w, component.GameplayTagComponent.Kind()) != 0 {
		t.Fatalf("expected an empty main menu")
	}

	h.frame(0, ebiten.KeyG)
	if !h.p.App.Is(component.AppStateGame) {
		t.Fatalf("expected game, got %v", h.p.App.Get())
	}
	if got := countOf(h.w, component.PlayerTagComponent.Kind()); got != 1 {
		t.Fatalf("expected 1 player, got %d", got)
	}
	if got := countOf(h.w, component.StarTagComponent.Kind()); got != 10 {
		t.Fatalf("expected 10 stars, got %d", got)
	}
	if got := countOf(h.w, component.EnemyComponent.Kind()); got != 10 {
		t.Fatalf("expected 10 enemies, got %d", got)
	}

	h.clearEnemies()
	h.frame(0, ebiten.KeyG)
	if !h.p.App.Is(component.AppStateMainMenu) {
		t.Fatalf("expected main menu, got %v", h.p.App.Get())
	}
	if got := countOf(h.w, component.GameplayTagComponent.Kind()); got != 0 {
		t.Fatalf("leaving the game must despawn gameplay entities, %d left", got)
	}
	if countOf(h.w, component.SpawnTimerComponent.Kind()) != 2 || countOf(h.w, component.ScoreComponent.Kind()) != 1 {
		t.Fatalf("singletons must survive state changes")
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	h := newHarness(t)
	h.frame(0, ebiten.KeyG)
	h.clearEnemies()

	player, _ := h.w.First(component.PlayerTagComponent.Kind())
	tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
	startX := tr.X

	h.frame(0, ebiten.KeySpace)
	if !h.p.Sim.Is(component.SimulationPaused) {
		t.Fatalf("expected paused")
	}

	h.keys.held[ebiten.KeyD] = true
	h.frame(1)
	if tr.X != startX {
		t.Fatalf("player moved while paused")
	}

	h.frame(0, ebiten.KeySpace)
	if !h.p.Sim.Is(component.SimulationRunning) {
		t.Fatalf("expected running")
	}
	h.frame(0.1)
	if tr.X <= startX {
		t.Fatalf("player should move once resumed")
	}
}

func TestSpaceIgnoredOutsideGame(t *testing.T) {
	h := newHarness(t)
	h.frame(0, ebiten.KeySpace)
	if !h.p.Sim.Is(component.SimulationRunning) {
		t.Fatalf("pause must only toggle during a run")
	}
}

func TestGameOverFlow(t *testing.T) {
	h := newHarness(t)
	h.frame(0, ebiten.KeyG)
	h.clearEnemies()

	scoreOf(t, h.w).Value = 5
	player, _ := h.w.First(component.PlayerTagComponent.Kind())
	tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
	placeEnemy(t, h.w, tr.X, tr.Y, cp.Vector{X: 1}, 0)

	h.frame(0)
	if !h.p.App.Is(component.AppStateGameOver) {
		t.Fatalf("expected game over, got %v", h.p.App.Get())
	}
	if len(h.saver.saves) != 1 || h.saver.saves[0][0].Score != 5 {
		t.Fatalf("expected the run persisted, got %v", h.saver.saves)
	}
	if got := countOf(h.w, component.GameplayTagComponent.Kind()); got != 0 {
		t.Fatalf("expected run cleaned up, %d left", got)
	}
	if len(h.sounds.played) == 0 || h.sounds.played[len(h.sounds.played)-1] != "explosion" {
		t.Fatalf("expected explosion, got %v", h.sounds.played)
	}

	h.frame(0, ebiten.KeyG)
	if !h.p.App.Is(component.AppStateGame) || scoreOf(t, h.w).Value != 0 {
		t.Fatalf("G from game over should start a fresh run")
	}
	h.clearEnemies()

	h.frame(0, ebiten.KeyM)
	if !h.p.App.Is(component.AppStateGame) {
		t.Fatalf("M must be ignored during a run, got %v", h.p.App.Get())
	}
	h.frame(0, ebiten.KeyG)
	if !h.p.App.Is(component.AppStateMainMenu) {
		t.Fatalf("G during a run returns to the menu, got %v", h.p.App.Get())
	}
}

func TestExitRequested(t *testing.T) {
	h := newHarness(t)
	h.frame(0)
	if h.p.Exit.Requested() {
		t.Fatalf("exit requested without Esc")
	}
	h.frame(0, ebiten.KeyEscape)
	if !h.p.Exit.Requested() {
		t.Fatalf("Esc must request exit")
	}
}

func TestDrawOrder(t *testing.T) {
	w, _, _ := newGameWorld(t)
	player := place(t, w, "player.yaml", 0, 0)
	star := place(t, w, "star.yaml", 0, 0)
	enemy := place(t, w, "enemy.yaml", 0, 0)
	star2 := place(t, w, "star.yaml", 0, 0)

	got := drawOrder(w)
	want := []ecs.Entity{star, star2, enemy, player}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
