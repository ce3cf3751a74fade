package dnd

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath turns the text a window system or terminal emits for a dropped
// file into a plain path. It handles surrounding whitespace and quotes,
// file:// URIs, shell backslash escapes and a leading "~/". Only the first
// line of a multi-file drop is used. Returns "" when nothing path-like is left.
func NormalizePath(payload string) string {
	p := strings.TrimSpace(payload)
	if i := strings.IndexAny(p, "\r\n"); i >= 0 {
		p = strings.TrimSpace(p[:i])
	}
	if p == "" {
		return ""
	}

	if len(p) >= 2 {
		first, last := p[0], p[len(p)-1]
		if (first == '\'' || first == '"') && last == first {
			p = p[1 : len(p)-1]
		}
	}

	if strings.HasPrefix(p, "file://") {
		u, err := url.Parse(p)
		if err != nil {
			return ""
		}
		p = u.Path
		if runtime.GOOS == "windows" && len(p) > 2 && p[0] == '/' && p[2] == ':' {
			p = p[1:]
		}
		return filepath.Clean(filepath.FromSlash(p))
	}

	if runtime.GOOS != "windows" {
		p = unescape(p)
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}

// LooksLikePath reports whether pasted text could be a dropped file rather than
// ordinary clipboard content
func LooksLikePath(payload string) bool {
	p := strings.TrimSpace(payload)
	if p == "" || strings.ContainsAny(p, "\r\n") {
		return false
	}
	p = strings.Trim(p, `'"`)

	switch {
	case strings.HasPrefix(p, "file://"):
		return true
	case strings.HasPrefix(p, "/"), strings.HasPrefix(p, "~/"):
		return true
	case runtime.GOOS == "windows" && len(p) > 2 && p[1] == ':' && (p[2] == '\\' || p[2] == '/'):
		return true
	}
	return false
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
