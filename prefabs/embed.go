package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Dir is the on-disk prefab directory. Files found there shadow the
// embedded copies so they can be edited while the game runs.
var Dir = "prefabs"

// Load returns a prefab or settings file such as "enemy.yaml".
func Load(name string) ([]byte, error) {
	return read(relative(name))
}

// LoadScript returns a script from prefabs/scripts. name may be given with
// or without the directory prefix.
func LoadScript(name string) ([]byte, error) {
	rel := strings.TrimPrefix(relative(name), "scripts/")
	return read(path.Join("scripts", rel))
}

// Names lists the embedded prefab files, without scripts.
func Names() []string {
	matches, _ := fs.Glob(files, "*.yaml")
	return matches
}

func read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	data, err := files.ReadFile(rel)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %q: %w", rel, err)
	}
	return data, nil
}

// relative turns a path as written in settings or on the command line into
// a slash path relative to Dir.
func relative(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	if s == "." {
		return ""
	}
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
