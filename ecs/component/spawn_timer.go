package component

type SpawnKind string

const (
	SpawnStar  SpawnKind = "star"
	SpawnEnemy SpawnKind = "enemy"
)

// SpawnTimer drives one kind of periodic wave. Wave counts the waves
// spawned since the run started.
type SpawnTimer struct {
	Kind  SpawnKind
	Timer Timer
	Wave  int
}

var SpawnTimerComponent = NewComponent[SpawnTimer]()
