package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// widget mimics a text area that shows tabs as four spaces
func widget(b *Buffer) string {
	return strings.ReplaceAll(b.Display(), "\t", "    ")
}

func TestBuffer_Display(t *testing.T) {
	b := New(nil)
	b.SetText("a\r\nb\nc\r\n")
	assert.Equal(t, "a\nb\nc\n", b.Display())
}

func TestBuffer_Edit(t *testing.T) {
	tests := []struct {
		name     string
		original string
		shown    string // widget value when it differs from the tab expansion
		edit     func(shown string) string
		want     string
	}{
		{
			name:     "append keeps tabs and crlf of untouched lines",
			original: "func f() {\n\treturn\n}\r\n",
			edit:     func(shown string) string { return shown + "x" },
			want:     "func f() {\n\treturn\n}\r\nx",
		},
		{
			name:     "new line in a crlf file",
			original: "a\r\n\tb\r\nc",
			edit: func(shown string) string {
				return strings.Replace(shown, "a\n", "a\nnew\n", 1)
			},
			want: "a\r\nnew\r\n\tb\r\nc",
		},
		{
			name:     "changed line takes the widget text",
			original: "\tone\n\ttwo\n\tthree\n",
			edit: func(shown string) string {
				return strings.Replace(shown, "    two", "    TWO", 1)
			},
			want: "\tone\n    TWO\n\tthree\n",
		},
		{
			name:     "deleted line",
			original: "a\r\nb\r\nc\r\n",
			edit:     func(string) string { return "a\nc\n" },
			want:     "a\r\nc\r\n",
		},
		{
			name:     "enter at the end of a crlf file",
			original: "a\r\nb",
			edit:     func(shown string) string { return shown + "\n" },
			want:     "a\r\nb\r\n",
		},
		{
			name:     "empty buffer",
			original: "",
			edit:     func(string) string { return "hi" },
			want:     "hi",
		},
		{
			name:     "lone carriage return falls back to widget text",
			original: "a\rb\n",
			shown:    "a\nb\n",
			edit:     func(string) string { return "a\nb\nc" },
			want:     "a\nb\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(nil)
			b.SetText(tt.original)

			shown := tt.shown
			if shown == "" {
				shown = widget(b)
			}
			b.Edit(shown, tt.edit(shown))

			assert.Equal(t, tt.want, b.Text())
		})
	}
}

func TestBuffer_EditWithoutChange(t *testing.T) {
	b := New(nil)
	b.SetText("\tx\r\n")

	shown := widget(b)
	b.Edit(shown, shown)

	assert.Equal(t, "\tx\r\n", b.Text())
}
