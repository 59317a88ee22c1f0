package component

type Score struct {
	Value int
	// LastLogged is the value last reported; -1 forces a report.
	LastLogged int
}

var ScoreComponent = NewComponent[Score]()

type HighScoreEntry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// HighScores keeps finished runs in the order they ended.
type HighScores struct {
	Entries []HighScoreEntry
	Dirty   bool
}

// Best returns the highest entry, if any.
func (h *HighScores) Best() (HighScoreEntry, bool) {
	if h == nil || len(h.Entries) == 0 {
		return HighScoreEntry{}, false
	}
	best := h.Entries[0]
	for _, e := range h.Entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, true
}

var HighScoresComponent = NewComponent[HighScores]()
