package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func existsIn(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func TestSession_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		gestures []Gesture
		want     State
	}{
		{name: "zero value is idle", want: Idle},
		{name: "enter", gestures: []Gesture{Enter}, want: Entered},
		{name: "enter then release", gestures: []Gesture{Enter, Release}, want: Released},
		{name: "release without enter", gestures: []Gesture{Release}, want: Idle},
		{name: "leave cancels entered", gestures: []Gesture{Enter, Leave}, want: Idle},
		{name: "leave cancels released", gestures: []Gesture{Enter, Release, Leave}, want: Idle},
		{name: "second enter keeps released", gestures: []Gesture{Enter, Release, Enter}, want: Released},
		{name: "leave from idle", gestures: []Gesture{Leave}, want: Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			for _, g := range tt.gestures {
				s.Dispatch(g)
			}
			assert.Equal(t, tt.want, s.State())
		})
	}
}

func TestSession_Paste(t *testing.T) {
	tests := []struct {
		name     string
		gestures []Gesture
		payload  string
		exists   func(string) bool
		want     Outcome
	}{
		{
			name:    "plain paste passes through",
			payload: "/tmp/a.txt",
			exists:  existsIn("/tmp/a.txt"),
			want:    Outcome{Action: PassThrough},
		},
		{
			name:     "paste without release passes through",
			gestures: []Gesture{Enter},
			payload:  "/tmp/a.txt",
			exists:   existsIn("/tmp/a.txt"),
			want:     Outcome{Action: PassThrough},
		},
		{
			name:     "paste after cancelled gesture passes through",
			gestures: []Gesture{Enter, Release, Leave},
			payload:  "/tmp/a.txt",
			exists:   existsIn("/tmp/a.txt"),
			want:     Outcome{Action: PassThrough},
		},
		{
			name:     "completed drop of existing file loads",
			gestures: []Gesture{Enter, Release},
			payload:  "/tmp/a.txt",
			exists:   existsIn("/tmp/a.txt"),
			want:     Outcome{Action: Load, Path: "/tmp/a.txt"},
		},
		{
			name:     "completed drop of missing file is swallowed",
			gestures: []Gesture{Enter, Release},
			payload:  "/tmp/missing.txt",
			exists:   existsIn("/tmp/a.txt"),
			want:     Outcome{Action: Swallow},
		},
		{
			name:     "completed drop of blank payload is swallowed",
			gestures: []Gesture{Enter, Release},
			payload:  "   ",
			exists:   existsIn(),
			want:     Outcome{Action: Swallow},
		},
		{
			name:     "nil validator fails closed",
			gestures: []Gesture{Enter, Release},
			payload:  "/tmp/a.txt",
			want:     Outcome{Action: Swallow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			for _, g := range tt.gestures {
				s.Dispatch(g)
			}
			assert.Equal(t, tt.want, s.Paste(tt.payload, tt.exists))
			assert.Equal(t, Idle, s.State())
		})
	}
}

func TestSession_DropIsConsumedOnce(t *testing.T) {
	var s Session
	exists := existsIn("/tmp/a.txt")

	s.Dispatch(Enter)
	s.Dispatch(Release)
	assert.Equal(t, Load, s.Paste("/tmp/a.txt", exists).Action)
	assert.Equal(t, PassThrough, s.Paste("/tmp/a.txt", exists).Action)
}

func TestSession_ValidatorOnlyForDrops(t *testing.T) {
	var s Session
	called := false
	s.Paste("/tmp/a.txt", func(string) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
