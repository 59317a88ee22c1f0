package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

func TestInputSystemMapsKeys(t *testing.T) {
	cases := []struct {
		name  string
		held  []ebiten.Key
		just  []ebiten.Key
		check func(in *component.Input) bool
	}{
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, nil, func(in *component.Input) bool {
			return in.Up && in.Left && !in.Down && !in.Right
		}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowRight}, nil, func(in *component.Input) bool {
			return in.Down && in.Right && !in.Up && !in.Left
		}},
		{"boost", []ebiten.Key{ebiten.KeyShiftLeft}, nil, func(in *component.Input) bool {
			return in.Boost
		}},
		{"edge_keys", nil, []ebiten.Key{ebiten.KeySpace, ebiten.KeyG, ebiten.KeyM, ebiten.KeyEscape, ebiten.KeyC}, func(in *component.Input) bool {
			return in.PausePressed && in.TogglePressed && in.MenuPressed && in.ExitPressed && in.CopyPressed
		}},
		{"nothing", nil, nil, func(in *component.Input) bool {
			return *in == component.Input{}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, _ := newGameWorld(t)
			keys := newFakeKeys()
			for _, k := range c.held {
				keys.held[k] = true
			}
			for _, k := range c.just {
				keys.just[k] = true
			}
			NewInputSystem(keys).Update(w)
			if in := inputOf(t, w); !c.check(in) {
				t.Fatalf("unexpected input %+v", *in)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	diag := 125 / math.Sqrt2
	cases := []struct {
		name   string
		input  component.Input
		dx, dy float64
	}{
		{"idle", component.Input{}, 0, 0},
		{"right", component.Input{Right: true}, 125, 0},
		{"up", component.Input{Up: true}, 0, -125},
		{"opposing_cancel", component.Input{Left: true, Right: true}, 0, 0},
		{"diagonal_normalized", component.Input{Down: true, Left: true}, -diag, diag},
		{"boost_doubles", component.Input{Right: true, Boost: true}, 250, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, settings, spawner := newGameWorld(t)
			player, err := spawner.SpawnPlayer(w)
			if err != nil {
				t.Fatal(err)
			}
			*inputOf(t, w) = c.input
			w.SetDelta(0.5)

			NewPlayerMovementSystem(settings, zap.NewNop()).Update(w)

			tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			if math.Abs(tr.X-(640+c.dx)) > 1e-6 || math.Abs(tr.Y-(360+c.dy)) > 1e-6 {
				t.Fatalf("expected (%v,%v), got (%v,%v)", 640+c.dx, 360+c.dy, tr.X, tr.Y)
			}
		})
	}
}

func TestPlayerMovementLogsKeysWhenEnabled(t *testing.T) {
	w, settings, spawner := newGameWorld(t)
	if _, err := spawner.SpawnPlayer(w); err != nil {
		t.Fatal(err)
	}
	log, logs := observedLogger()
	inputOf(t, w).Up = true

	settings.Player.LogMovement = false
	NewPlayerMovementSystem(settings, log).Update(w)
	if logs.Len() != 0 {
		t.Fatalf("movement logging is off, got %d entries", logs.Len())
	}

	settings.Player.LogMovement = true
	NewPlayerMovementSystem(settings, log).Update(w)
	if logs.FilterMessage("player movement").Len() != 1 {
		t.Fatalf("expected one movement entry, got %v", logs.All())
	}
}

func TestPlayerConfine(t *testing.T) {
	cases := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, 100, 100, 100},
		{"left_top", -10, -40, 15, 15},
		{"right_bottom", 1300, 800, 1265, 705},
		{"exact_edge", 15, 705, 15, 705},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, _ := newGameWorld(t)
			p := place(t, w, "player.yaml", c.x, c.y)
			NewPlayerConfineSystem().Update(w)
			tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
			if tr.X != c.wantX || tr.Y != c.wantY {
				t.Fatalf("expected (%v,%v), got (%v,%v)", c.wantX, c.wantY, tr.X, tr.Y)
			}
		})
	}
}

func TestPlayerCollectsStars(t *testing.T) {
	w, settings, _ := newGameWorld(t)
	log, logs := observedLogger()
	place(t, w, "player.yaml", 500, 500)
	near := place(t, w, "star.yaml", 520, 500)  // 20 < 15+15
	touch := place(t, w, "star.yaml", 500, 529) // 29 < 30
	far := place(t, w, "star.yaml", 500, 530)   // 30 is not < 30

	NewPlayerStarSystem(settings, log).Update(w)

	if got := scoreOf(t, w).Value; got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}
	if w.IsAlive(near) || w.IsAlive(touch) {
		t.Fatalf("collected stars must be despawned")
	}
	if !w.IsAlive(far) {
		t.Fatalf("star at exactly the radius sum must stay")
	}
	if sounds := soundRequests(w); len(sounds) != 2 || sounds[0] != "laser" {
		t.Fatalf("expected two laser requests, got %v", sounds)
	}
	if logs.FilterMessage("player hit star").Len() != 2 {
		t.Fatalf("expected two pickup log entries, got %v", logs.All())
	}
}

func TestPlayerStarWithoutPlayer(t *testing.T) {
	w, settings, _ := newGameWorld(t)
	star := place(t, w, "star.yaml", 10, 10)
	NewPlayerStarSystem(settings, zap.NewNop()).Update(w)
	if !w.IsAlive(star) || scoreOf(t, w).Value != 0 {
		t.Fatalf("nothing should happen without a player")
	}
}
