package component

// Input stores per-frame keyboard state. The *Pressed fields are true only
// on the frame the key went down.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Boost bool

	PausePressed  bool
	TogglePressed bool
	MenuPressed   bool
	ExitPressed   bool
	CopyPressed   bool
}

var InputComponent = NewComponent[Input]()
