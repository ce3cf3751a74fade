package document

// Event is anything the controller consumes: a Command, a dialog reply or the
// completion of a load or write it asked for.
type Event interface {
	isEvent()
}

// Confirmed answers a Confirm effect
type Confirmed struct {
	Yes bool
}

// PathChosen answers a PickOpen or PickSave effect. An empty path means the
// user cancelled the dialog.
type PathChosen struct {
	Path string
}

// Acknowledged answers an Alert effect
type Acknowledged struct{}

// Loaded reports the result of a LoadFile effect
type Loaded struct {
	Path string
	Err  error
}

// Written reports the result of a WriteFile effect
type Written struct {
	Path string
	Err  error
}

// Dropped is a validated drag-and-drop of an existing file
type Dropped struct {
	Path string
}

func (Confirmed) isEvent()    {}
func (PathChosen) isEvent()   {}
func (Acknowledged) isEvent() {}
func (Loaded) isEvent()       {}
func (Written) isEvent()      {}
func (Dropped) isEvent()      {}
