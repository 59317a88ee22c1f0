package component

type AppState int

const (
	AppStateMainMenu AppState = iota
	AppStateGame
	AppStateGameOver
)

func (s AppState) String() string {
	switch s {
	case AppStateMainMenu:
		return "main_menu"
	case AppStateGame:
		return "game"
	case AppStateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type SimulationState int

const (
	SimulationRunning SimulationState = iota
	SimulationPaused
)

func (s SimulationState) String() string {
	if s == SimulationPaused {
		return "paused"
	}
	return "running"
}
