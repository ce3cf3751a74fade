package buffer

import "strings"

// line is one line of the stored text and the break that follows it
type line struct {
	text string
	crlf bool
}

// Display returns the content for a text widget: CRLF breaks are shown as
// plain newlines. Widgets may sanitize further (tabs to spaces); Edit
// accounts for that.
func (b *Buffer) Display() string {
	return strings.ReplaceAll(b.text, "\r\n", "\n")
}

// Edit applies a change made in a text widget. shown is the widget value the
// buffer was last synced to and edited is its value now. Lines outside the
// changed region keep their original bytes and line breaks; new lines use the
// file's prevailing line break.
func (b *Buffer) Edit(shown, edited string) {
	if shown == edited {
		return
	}

	original := splitLines(b.text)
	crlf := prefersCRLF(b.text)
	shownLines := strings.Split(shown, "\n")
	editedLines := strings.Split(edited, "\n")

	// Without a line for line match the widget text is all there is
	if len(shownLines) != len(original) {
		b.text = joinLines(fromWidget(editedLines, crlf))
		return
	}

	prefix := 0
	for prefix < len(shownLines) && prefix < len(editedLines) && shownLines[prefix] == editedLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(shownLines)-prefix && suffix < len(editedLines)-prefix &&
		shownLines[len(shownLines)-1-suffix] == editedLines[len(editedLines)-1-suffix] {
		suffix++
	}

	lines := make([]line, 0, len(editedLines))
	lines = append(lines, original[:prefix]...)
	lines = append(lines, fromWidget(editedLines[prefix:len(editedLines)-suffix], crlf)...)
	lines = append(lines, original[len(original)-suffix:]...)
	b.text = joinLines(lines)
}

func splitLines(text string) []line {
	parts := strings.Split(text, "\n")
	lines := make([]line, len(parts))
	last := len(parts) - 1
	for i, part := range parts {
		if i < last && strings.HasSuffix(part, "\r") {
			lines[i] = line{text: strings.TrimSuffix(part, "\r"), crlf: true}
			continue
		}
		lines[i] = line{text: part}
	}
	// The last line has no break of its own; give it the file's
	lines[last].crlf = prefersCRLF(text)
	return lines
}

func fromWidget(texts []string, crlf bool) []line {
	lines := make([]line, len(texts))
	for i, text := range texts {
		lines[i] = line{text: text, crlf: crlf}
	}
	return lines
}

func joinLines(lines []line) string {
	var sb strings.Builder
	for i, l := range lines {
		sb.WriteString(l.text)
		if i == len(lines)-1 {
			break
		}
		if l.crlf {
			sb.WriteString("\r\n")
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// prefersCRLF reports whether most line breaks in text are CRLF
func prefersCRLF(text string) bool {
	breaks := strings.Count(text, "\n")
	return breaks > 0 && strings.Count(text, "\r\n")*2 > breaks
}
