package document

// Command names one user intent. Commands carry no payload; which file is
// involved is resolved through dialogs.
type Command int

const (
	CommandChanged Command = iota
	CommandNew
	CommandOpen
	CommandSave
	CommandSaveAs
	CommandQuit
	CommandCut
	CommandCopy
	CommandPaste
)

var commandNames = map[Command]string{
	CommandChanged: "changed",
	CommandNew:     "new",
	CommandOpen:    "open",
	CommandSave:    "save",
	CommandSaveAs:  "save-as",
	CommandQuit:    "quit",
	CommandCut:     "cut",
	CommandCopy:    "copy",
	CommandPaste:   "paste",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

func (Command) isEvent() {}
