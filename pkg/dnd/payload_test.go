//go:build !windows

package dnd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "plain", payload: "/tmp/a.txt", want: "/tmp/a.txt"},
		{name: "trailing space from terminal drop", payload: "/tmp/a.txt ", want: "/tmp/a.txt"},
		{name: "single quoted", payload: "'/tmp/my file.txt'", want: "/tmp/my file.txt"},
		{name: "double quoted", payload: `"/tmp/my file.txt"`, want: "/tmp/my file.txt"},
		{name: "backslash escaped", payload: `/tmp/my\ file\(1\).txt`, want: "/tmp/my file(1).txt"},
		{name: "file uri", payload: "file:///tmp/my%20file.txt", want: "/tmp/my file.txt"},
		{name: "file uri with crlf list", payload: "file:///tmp/a.txt\r\nfile:///tmp/b.txt\r\n", want: "/tmp/a.txt"},
		{name: "home relative", payload: "~/notes.txt", want: filepath.Join(home, "notes.txt")},
		{name: "unclean", payload: "/tmp//x/../a.txt", want: "/tmp/a.txt"},
		{name: "empty", payload: "", want: ""},
		{name: "only quotes", payload: "''", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.payload))
		})
	}
}

func TestLooksLikePath(t *testing.T) {
	tests := []struct {
		payload string
		want    bool
	}{
		{"/tmp/a.txt", true},
		{"'/tmp/a b.txt' ", true},
		{"file:///tmp/a.txt", true},
		{"~/a.txt", true},
		{"hello world", false},
		{"relative/path.txt", false},
		{"/tmp/a.txt\n/tmp/b.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikePath(tt.payload))
		})
	}
}
