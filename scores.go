package main

import (
	"sort"

	"github.com/milk9111/ballgame/ecs/component"
)

// sortedScores orders entries best first; ties keep the order the runs
// finished in.
func sortedScores(entries []component.HighScoreEntry) []component.HighScoreEntry {
	out := append([]component.HighScoreEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
