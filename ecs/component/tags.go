package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type StarTag struct{}

var StarTagComponent = NewComponent[StarTag]()

// GameplayTag marks entities owned by a run; they are despawned when the
// game state is left.
type GameplayTag struct{}

var GameplayTagComponent = NewComponent[GameplayTag]()
