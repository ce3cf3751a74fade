// Package document implements the document-state controller.
//
// The controller is a state machine over the save target and the unsaved
// flag. It never performs I/O or shows UI itself: Handle returns the effects a
// frontend must execute, and the frontend feeds dialog replies and I/O results
// back as events. Handle is not safe for concurrent use; frontends call it from
// their single event loop.
package document

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Env answers the questions the controller cannot answer from its own state
type Env interface {
	BufferEmpty() bool
	Exists(path string) bool
}

// State is the persisted identity of the document
type State struct {
	Path    string // empty until the first successful load or save
	Unsaved bool   // edits since the last successful load or save
}

// HasTarget reports whether Save can write without asking for a path
func (s State) HasTarget() bool {
	return s.Path != ""
}

type awaiting int

const (
	awaitingNothing awaiting = iota
	awaitingDiscard
	awaitingSaveBeforeQuit
	awaitingOpenPath
	awaitingSavePath
	awaitingLoad
	awaitingWrite
	awaitingAlert
	terminated
)

var awaitingNames = map[awaiting]string{
	awaitingNothing:        "nothing",
	awaitingDiscard:        "discard-confirmation",
	awaitingSaveBeforeQuit: "quit-confirmation",
	awaitingOpenPath:       "open-path",
	awaitingSavePath:       "save-path",
	awaitingLoad:           "load",
	awaitingWrite:          "write",
	awaitingAlert:          "alert",
	terminated:             "terminated",
}

// Controller owns the document state
type Controller struct {
	state    State
	awaiting awaiting
	quitting bool // a save started from Quit; terminate once it resolves
	log      logrus.FieldLogger
}

// NewController creates a controller for a document whose content has already
// been loaded from path (empty for a fresh document)
func NewController(path string, log logrus.FieldLogger) *Controller {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Controller{
		state: State{Path: path},
		log:   log,
	}
}

// State returns a copy of the current document state
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether the controller is waiting for a reply and will reject
// commands until it arrives
func (c *Controller) Busy() bool {
	return c.awaiting != awaitingNothing
}

// Terminated reports whether a Terminate or Fatal effect has been issued
func (c *Controller) Terminated() bool {
	return c.awaiting == terminated
}

// Handle advances the state machine by one event and returns the effects to run
func (c *Controller) Handle(ev Event, env Env) []Effect {
	if c.awaiting == terminated {
		return nil
	}

	var effects []Effect
	switch ev := ev.(type) {
	case Command:
		effects = c.handleCommand(ev, env)
	case Confirmed:
		effects = c.handleConfirmed(ev, env)
	case PathChosen:
		effects = c.handlePathChosen(ev, env)
	case Acknowledged:
		effects = c.handleAcknowledged()
	case Loaded:
		effects = c.handleLoaded(ev)
	case Written:
		effects = c.handleWritten(ev)
	case Dropped:
		effects = c.handleDropped(ev)
	}

	c.log.WithFields(logrus.Fields{
		"event":    describe(ev),
		"path":     c.state.Path,
		"unsaved":  c.state.Unsaved,
		"awaiting": awaitingNames[c.awaiting],
		"effects":  len(effects),
	}).Debug("document transition")

	return effects
}

func (c *Controller) handleCommand(cmd Command, env Env) []Effect {
	// Buffer notifications are not user commands and are never rejected
	if cmd == CommandChanged {
		c.state.Unsaved = true
		return nil
	}

	if c.awaiting != awaitingNothing {
		c.log.WithField("command", cmd.String()).Warn("command rejected while a prompt is pending")
		return nil
	}

	switch cmd {
	case CommandNew:
		if env.BufferEmpty() {
			return nil
		}
		c.awaiting = awaitingDiscard
		return []Effect{Confirm{
			Prompt:   PromptDiscardChanges,
			Message:  DiscardChangesMessage,
			YesLabel: "Yes",
			NoLabel:  "No!",
		}}

	case CommandOpen:
		c.awaiting = awaitingOpenPath
		return []Effect{PickOpen{}}

	case CommandSave, CommandSaveAs:
		return c.save(env)

	case CommandQuit:
		if !c.state.Unsaved {
			return c.terminate()
		}
		c.awaiting = awaitingSaveBeforeQuit
		return []Effect{Confirm{
			Prompt:   PromptSaveBeforeQuit,
			Message:  SaveBeforeQuitMessage,
			YesLabel: "Yes",
			NoLabel:  "No",
		}}

	case CommandCut, CommandCopy, CommandPaste:
		return []Effect{ClipboardOp{Op: cmd}}
	}

	return nil
}

// save writes straight to the target only when there are edits and a target
// that still exists; anything else goes through the save-as picker.
func (c *Controller) save(env Env) []Effect {
	if c.state.Unsaved && c.state.HasTarget() {
		if !env.Exists(c.state.Path) {
			return c.alert(SpecifyFileMessage, nil)
		}
		c.awaiting = awaitingWrite
		return []Effect{WriteFile{Path: c.state.Path}}
	}

	c.awaiting = awaitingSavePath
	return []Effect{PickSave{Suggested: c.state.Path}}
}

func (c *Controller) handleConfirmed(ev Confirmed, env Env) []Effect {
	switch c.awaiting {
	case awaitingDiscard:
		c.awaiting = awaitingNothing
		if !ev.Yes {
			return nil
		}
		c.state.Unsaved = false
		return []Effect{ClearBuffer{}}

	case awaitingSaveBeforeQuit:
		c.awaiting = awaitingNothing
		if !ev.Yes {
			return c.terminate()
		}
		c.quitting = true
		return c.save(env)
	}

	return c.unexpected(ev)
}

func (c *Controller) handlePathChosen(ev PathChosen, env Env) []Effect {
	switch c.awaiting {
	case awaitingOpenPath:
		c.awaiting = awaitingNothing
		if ev.Path == "" {
			return nil
		}
		if !env.Exists(ev.Path) {
			return c.alert(FileMissingMessage, nil)
		}
		c.awaiting = awaitingLoad
		return []Effect{LoadFile{Path: ev.Path}}

	case awaitingSavePath:
		c.awaiting = awaitingNothing
		if ev.Path == "" {
			if c.quitting {
				return c.terminate()
			}
			return nil
		}
		c.awaiting = awaitingWrite
		return []Effect{WriteFile{Path: ev.Path}}
	}

	return c.unexpected(ev)
}

func (c *Controller) handleAcknowledged() []Effect {
	if c.awaiting != awaitingAlert {
		return c.unexpected(Acknowledged{})
	}
	c.awaiting = awaitingNothing
	if c.quitting {
		return c.terminate()
	}
	return nil
}

func (c *Controller) handleLoaded(ev Loaded) []Effect {
	if c.awaiting != awaitingLoad {
		return c.unexpected(ev)
	}
	c.awaiting = awaitingNothing

	// The buffer may be half-replaced; the session cannot continue
	if ev.Err != nil {
		c.awaiting = terminated
		return []Effect{Fatal{Err: fmt.Errorf("failed to load %s: %w", ev.Path, ev.Err)}}
	}

	c.state = State{Path: ev.Path, Unsaved: false}
	return nil
}

func (c *Controller) handleWritten(ev Written) []Effect {
	if c.awaiting != awaitingWrite {
		return c.unexpected(ev)
	}
	c.awaiting = awaitingNothing

	if ev.Err != nil {
		return c.alert(fmt.Sprintf("Could not save %s", filepath.Base(ev.Path)), ev.Err)
	}

	c.state = State{Path: ev.Path, Unsaved: false}
	if c.quitting {
		return c.terminate()
	}
	return nil
}

func (c *Controller) handleDropped(ev Dropped) []Effect {
	if c.awaiting != awaitingNothing {
		c.log.WithField("path", ev.Path).Warn("drop ignored while a prompt is pending")
		return nil
	}
	c.awaiting = awaitingLoad
	return []Effect{LoadFile{Path: ev.Path}}
}

func (c *Controller) alert(message string, err error) []Effect {
	c.awaiting = awaitingAlert
	return []Effect{Alert{Message: message, Err: err}}
}

func (c *Controller) terminate() []Effect {
	c.awaiting = terminated
	c.quitting = false
	return []Effect{Terminate{}}
}

func (c *Controller) unexpected(ev Event) []Effect {
	c.log.WithFields(logrus.Fields{
		"event":    describe(ev),
		"awaiting": awaitingNames[c.awaiting],
	}).Warn("unexpected reply ignored")
	return nil
}

func describe(ev Event) string {
	switch ev := ev.(type) {
	case Command:
		return ev.String()
	case Confirmed:
		if ev.Yes {
			return "confirmed:yes"
		}
		return "confirmed:no"
	case PathChosen:
		return "path-chosen"
	case Acknowledged:
		return "acknowledged"
	case Loaded:
		return "loaded"
	case Written:
		return "written"
	case Dropped:
		return "dropped"
	}
	return "unknown"
}
