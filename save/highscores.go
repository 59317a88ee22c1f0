package save

import (
	"fmt"

	"github.com/milk9111/ballgame/ecs/component"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "ballgame"

	highScoresObject   = "scores"
	highScoresProperty = "high_scores"
)

type highScoresFile struct {
	Entries []component.HighScoreEntry `yaml:"entries"`
}

// HighScoreStore persists finished runs. A store without a gdata manager
// keeps nothing and never fails.
type HighScoreStore struct {
	manager *gdata.Manager
}

// Open creates a store backed by the per-user data directory of appName.
func Open(appName string) (*HighScoreStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %q: %w", appName, err)
	}
	return NewHighScoreStore(m), nil
}

func NewHighScoreStore(m *gdata.Manager) *HighScoreStore {
	return &HighScoreStore{manager: m}
}

func (s *HighScoreStore) Load() ([]component.HighScoreEntry, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}
	if !s.manager.ObjectPropExists(highScoresObject, highScoresProperty) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(highScoresObject, highScoresProperty)
	if err != nil {
		return nil, fmt.Errorf("save: load high scores: %w", err)
	}
	var f highScoresFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("save: unmarshal high scores: %w", err)
	}
	return f.Entries, nil
}

func (s *HighScoreStore) Save(entries []component.HighScoreEntry) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(highScoresFile{Entries: entries})
	if err != nil {
		return fmt.Errorf("save: marshal high scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(highScoresObject, highScoresProperty, data); err != nil {
		return fmt.Errorf("save: write high scores: %w", err)
	}
	return nil
}

// Clear drops every stored entry.
func (s *HighScoreStore) Clear() error {
	return s.Save(nil)
}
