package document

// Effect describes a side action the frontend must perform on behalf of the
// controller. Effects that need an answer (Confirm, PickOpen, PickSave, Alert,
// LoadFile, WriteFile) are resolved by feeding the matching event back.
type Effect interface {
	isEffect()
}

// Prompt identifies a confirmation question
type Prompt int

const (
	PromptDiscardChanges Prompt = iota
	PromptSaveBeforeQuit
)

// User-facing texts
const (
	DiscardChangesMessage = "File unsaved, Do you wish to continue?"
	SaveBeforeQuitMessage = "Would you like to save your work?"
	FileMissingMessage    = "File does not exist!"
	SpecifyFileMessage    = "Please specify a file!"
)

// Confirm asks a yes/no question
type Confirm struct {
	Prompt   Prompt
	Message  string
	YesLabel string
	NoLabel  string
}

// PickOpen shows the existing-file picker
type PickOpen struct{}

// PickSave shows the save-as picker. Suggested is the current save target, if any.
type PickSave struct {
	Suggested string
}

// Alert shows a message with a single acknowledgement
type Alert struct {
	Message string
	Err     error
}

// LoadFile replaces the buffer with the file at Path
type LoadFile struct {
	Path string
}

// WriteFile writes the buffer to Path
type WriteFile struct {
	Path string
}

// ClearBuffer empties the buffer
type ClearBuffer struct{}

// ClipboardOp delegates Cut, Copy or Paste to the text widget
type ClipboardOp struct {
	Op Command
}

// Terminate ends the session normally
type Terminate struct{}

// Fatal ends the session after showing Err in a blocking dialog
type Fatal struct {
	Err error
}

func (Confirm) isEffect()     {}
func (PickOpen) isEffect()    {}
func (PickSave) isEffect()    {}
func (Alert) isEffect()       {}
func (LoadFile) isEffect()    {}
func (WriteFile) isEffect()   {}
func (ClearBuffer) isEffect() {}
func (ClipboardOp) isEffect() {}
func (Terminate) isEffect()   {}
func (Fatal) isEffect()       {}
