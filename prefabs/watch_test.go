package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(target, []byte("window: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "settings.yaml" {
			t.Fatalf("expected settings.yaml event, got %q", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if got, err := w.Poll(); len(got) != 0 || err != nil {
		t.Fatalf("expected nothing after close, got %v %v", got, err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestWatcherPollCollapsesRepeats(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for _, name := range []string{"a.yaml", "a.yaml", "b.tengo", "a.yaml"} {
		w.Events <- name
	}
	got, err := w.Poll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "b.tengo" {
		t.Fatalf("expected [a.yaml b.tengo], got %v", got)
	}
	if again, _ := w.Poll(); len(again) != 0 {
		t.Fatalf("expected an empty second poll, got %v", again)
	}
}
