package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's actual font. Instead, we choose
// between Unicode and ASCII glyph sets for UI affordances (twisties, tree
// rules, severity icons). This helps on terminals/fonts that don't render
// some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ZONETREE_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphTwistyCollapsed() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphTwistyExpanded() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphBranch() string {
	if glyphs() == glyphSetASCII {
		return "|-"
	}
	return "├─"
}

func glyphBranchLast() string {
	if glyphs() == glyphSetASCII {
		return "`-"
	}
	return "└─"
}

func glyphSeverity(sev severity) string {
	if glyphs() == glyphSetASCII {
		switch sev {
		case severityError:
			return "[!]"
		case severityWarning:
			return "[~]"
		}
		return "[i]"
	}
	switch sev {
	case severityError:
		return "✗"
	case severityWarning:
		return "⚠"
	}
	return "✓"
}
