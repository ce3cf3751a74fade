package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rivo/uniseg"
)

// DocumentStats is what the status bar shows about the buffer
type DocumentStats struct {
	Lines     int
	Words     int
	Chars     int // grapheme clusters
	Bytes     int
	MIME      string
	LastSaved time.Time
}

// ComputeStats measures text. lastSaved is zero for a document never saved in
// this session.
func ComputeStats(text string, lastSaved time.Time) DocumentStats {
	return DocumentStats{
		Lines:     CountLines(text),
		Words:     CountWords(text),
		Chars:     uniseg.GraphemeClusterCount(text),
		Bytes:     len(text),
		MIME:      detectType(text),
		LastSaved: lastSaved,
	}
}

// Summary renders the stats as one status bar segment
func (s DocumentStats) Summary() string {
	parts := []string{
		fmt.Sprintf("%d lines", s.Lines),
		fmt.Sprintf("%d words", s.Words),
		fmt.Sprintf("%d chars", s.Chars),
		humanize.Bytes(uint64(s.Bytes)),
	}
	if s.MIME != "" {
		parts = append(parts, s.MIME)
	}
	if !s.LastSaved.IsZero() {
		parts = append(parts, "saved "+humanize.Time(s.LastSaved))
	}
	return strings.Join(parts, " · ")
}

// CountLines counts lines, ignoring a trailing newline
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		return len(lines) - 1
	}
	return len(lines)
}

func CountWords(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}

// detectType returns the media type without parameters ("text/plain")
func detectType(text string) string {
	if text == "" {
		return ""
	}
	mtype := mimetype.Detect([]byte(text)).String()
	if i := strings.Index(mtype, ";"); i >= 0 {
		mtype = mtype[:i]
	}
	return mtype
}
