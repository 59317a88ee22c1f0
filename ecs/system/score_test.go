package system

import (
	"testing"

	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

func TestScoreLogOnlyOnChange(t *testing.T) {
	w, _, _ := newGameWorld(t)
	log, logs := observedLogger()
	s := NewScoreLogSystem(log)
	sc := scoreOf(t, w)
	sc.LastLogged = -1

	s.Update(w)
	s.Update(w)
	sc.Value = 3
	s.Update(w)

	msgs := logs.All()
	if len(msgs) != 2 || msgs[0].Message != "Score: 0" || msgs[1].Message != "Score: 3" {
		t.Fatalf("expected Score: 0 then Score: 3, got %v", msgs)
	}
}

func TestGameOverRecordsScore(t *testing.T) {
	w, _, _ := newGameWorld(t)
	log, logs := observedLogger()
	app := ecs.NewState(component.AppStateGame)

	s := NewGameOverSystem(app, log)
	s.Update(w)
	if _, pending := app.Pending(); pending {
		t.Fatalf("no event means no transition")
	}

	w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: ecs.GameOver{Score: 4}})
	s.Update(w)

	if next, pending := app.Pending(); !pending || next != component.AppStateGameOver {
		t.Fatalf("expected pending game over, got %v %v", next, pending)
	}
	if logs.FilterMessage("Your final score is 4").Len() != 1 {
		t.Fatalf("expected final score log, got %v", logs.All())
	}
	hs, _ := ecs.FirstComponent(w, component.HighScoresComponent.Kind())
	if len(hs.Entries) != 1 || hs.Entries[0] != (component.HighScoreEntry{Name: "Player", Score: 4}) || !hs.Dirty {
		t.Fatalf("expected a dirty Player entry, got %+v", hs)
	}
}

func TestHighScoreSystemPersistsOnce(t *testing.T) {
	w, _, _ := newGameWorld(t)
	saver := &fakeSaver{}
	log, logs := observedLogger()
	s := NewHighScoreSystem(saver, log)

	hs, _ := ecs.FirstComponent(w, component.HighScoresComponent.Kind())
	hs.Entries = []component.HighScoreEntry{{Name: "Player", Score: 2}, {Name: "Player", Score: 8}}
	s.Update(w)
	if len(saver.saves) != 0 {
		t.Fatalf("clean list must not be saved")
	}

	hs.Dirty = true
	s.Update(w)
	s.Update(w)
	if len(saver.saves) != 1 || len(saver.saves[0]) != 2 {
		t.Fatalf("expected one save of two entries, got %v", saver.saves)
	}
	if hs.Dirty {
		t.Fatalf("dirty flag must be cleared")
	}
	if logs.FilterMessage("high score").Len() != 2 {
		t.Fatalf("expected each entry logged once")
	}
}

func TestHighScoreSystemWithoutStore(t *testing.T) {
	w, _, _ := newGameWorld(t)
	hs, _ := ecs.FirstComponent(w, component.HighScoresComponent.Kind())
	hs.Dirty = true
	NewHighScoreSystem(nil, zap.NewNop()).Update(w)
	if hs.Dirty {
		t.Fatalf("dirty flag must be cleared without a store too")
	}
}

func TestCopyScore(t *testing.T) {
	w, _, _ := newGameWorld(t)
	clip := &fakeClipboard{}
	s := NewCopyScoreSystem(clip, zap.NewNop())
	scoreOf(t, w).Value = 17

	s.Update(w)
	inputOf(t, w).CopyPressed = true
	s.Update(w)

	if len(clip.text) != 1 || clip.text[0] != "17" {
		t.Fatalf("expected one copy of 17, got %v", clip.text)
	}
}

func TestAudioSystemServesRequests(t *testing.T) {
	w, _, _ := newGameWorld(t)
	sounds := &fakeSounds{}
	for _, name := range []string{"pluck", "laser"} {
		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: name})
	}

	NewAudioSystem(sounds, zap.NewNop()).Update(w)

	if len(sounds.played) != 2 {
		t.Fatalf("expected two sounds, got %v", sounds.played)
	}
	if got := soundRequests(w); len(got) != 0 {
		t.Fatalf("requests must be consumed, got %v", got)
	}
}
