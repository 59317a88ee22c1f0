package component

// SoundRequest asks the audio system to play a named clip once. The
// carrying entity is destroyed after the request is served.
type SoundRequest struct {
	Name string
}

var SoundRequestComponent = NewComponent[SoundRequest]()
