// Package dnd tells drag-and-drop file drops apart from ordinary clipboard
// pastes.
//
// Frontends report the gesture events they observe (enter, release, leave) to
// a Session and ask it how to treat each paste. A paste counts as a drop only
// when it arrives after a completed enter + release sequence.
package dnd

// State of a drop gesture
type State int

const (
	Idle State = iota
	Entered
	Released
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Entered:
		return "entered"
	case Released:
		return "released"
	}
	return "unknown"
}

// Gesture is a drag event reported by the window system
type Gesture int

const (
	Enter Gesture = iota
	Release
	Leave
)

// Action tells the frontend what to do with a paste
type Action int

const (
	// PassThrough: not a drop, handle as an ordinary clipboard paste
	PassThrough Action = iota
	// Load: a completed drop of an existing file
	Load
	// Swallow: a completed drop whose payload is not an existing file. The
	// paste is consumed so the raw text never reaches the buffer.
	Swallow
)

func (a Action) String() string {
	switch a {
	case PassThrough:
		return "pass-through"
	case Load:
		return "load"
	case Swallow:
		return "swallow"
	}
	return "unknown"
}

// Outcome of a paste
type Outcome struct {
	Action Action
	Path   string // set for Load
}

// Session tracks one drag gesture at a time. The zero value is Idle and ready
// to use.
type Session struct {
	state State
}

// State returns the current gesture state
func (s *Session) State() State {
	return s.state
}

// Dispatch advances the gesture and returns the new state. Events that make no
// sense in the current state (a release without an enter, a second enter) are
// ignored.
func (s *Session) Dispatch(g Gesture) State {
	switch g {
	case Enter:
		if s.state == Idle {
			s.state = Entered
		}
	case Release:
		if s.state == Entered {
			s.state = Released
		}
	case Leave:
		s.state = Idle
	}
	return s.state
}

// Paste classifies a paste event. exists reports whether a normalized payload
// names an existing file; it is only consulted for completed drops.
func (s *Session) Paste(payload string, exists func(path string) bool) Outcome {
	if s.state != Released {
		return Outcome{Action: PassThrough}
	}
	s.state = Idle

	path := NormalizePath(payload)
	if path == "" || exists == nil || !exists(path) {
		return Outcome{Action: Swallow}
	}
	return Outcome{Action: Load, Path: path}
}
