package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/prefabs"
	"go.uber.org/zap"
)

// Director decides how many entities a spawn wave creates. base is the
// configured per-wave count and wave is 1-based.
type Director interface {
	WaveSize(kind component.SpawnKind, wave, score, base int) (int, error)
}

// FixedDirector always spawns the configured count.
type FixedDirector struct{}

func (FixedDirector) WaveSize(_ component.SpawnKind, _, _, base int) (int, error) {
	return base, nil
}

// ScriptDirector runs a tengo script that reads kind, wave, score and base
// and leaves the wave size in the global count.
type ScriptDirector struct {
	path     string
	compiled *tengo.Compiled
}

func NewScriptDirector(path string) (*ScriptDirector, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("director: load %q: %w", path, err)
	}
	return CompileDirector(path, src)
}

// CompileDirector builds a director from script source.
func CompileDirector(name string, src []byte) (*ScriptDirector, error) {
	script := tengo.NewScript(src)
	_ = script.Add("kind", "")
	_ = script.Add("wave", 0)
	_ = script.Add("score", 0)
	_ = script.Add("base", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("director: compile %q: %w", name, err)
	}
	// script globals stay undefined until the first run
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("director: run %q: %w", name, err)
	}
	if !compiled.IsDefined("count") {
		return nil, fmt.Errorf("director: %q does not define count", name)
	}
	return &ScriptDirector{path: name, compiled: compiled}, nil
}

// LoadDirector returns the script director at path, or FixedDirector when
// path is empty or the script cannot be used.
func LoadDirector(path string, log *zap.Logger) Director {
	if path == "" {
		return FixedDirector{}
	}
	d, err := NewScriptDirector(path)
	if err != nil {
		log.Warn("director script unavailable, using fixed wave sizes", zap.Error(err))
		return FixedDirector{}
	}
	log.Debug("director script loaded", zap.String("path", d.Path()))
	return d
}

func (d *ScriptDirector) Path() string {
	return d.path
}

func (d *ScriptDirector) WaveSize(kind component.SpawnKind, wave, score, base int) (int, error) {
	if err := d.compiled.Set("kind", string(kind)); err != nil {
		return base, err
	}
	if err := d.compiled.Set("wave", wave); err != nil {
		return base, err
	}
	if err := d.compiled.Set("score", score); err != nil {
		return base, err
	}
	if err := d.compiled.Set("base", base); err != nil {
		return base, err
	}
	if err := d.compiled.Run(); err != nil {
		return base, fmt.Errorf("director: run %q: %w", d.path, err)
	}
	count := d.compiled.Get("count").Int()
	if count < 0 {
		count = 0
	}
	return count, nil
}
