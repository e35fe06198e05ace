package filters

import (
	"maidx/pkg/models/music"
	"slices"
)

// MusicFilter narrows the catalogue. Zero values act as wildcards, except
// Band where -1 means any band.
type MusicFilter struct {
	Level      string
	Band       int
	Types      []string
	DSLow      float64
	DSHigh     float64
	ExcludeIDs map[int]struct{}
}

// NewMusicFilter creates a filter with every predicate as a wildcard.
func NewMusicFilter() *MusicFilter {
	return &MusicFilter{Band: -1}
}

// Matches verifies if the music satisfies every provided predicate.
func (f *MusicFilter) Matches(m *music.Music) bool {
	if f.ExcludeIDs != nil {
		if _, excluded := f.ExcludeIDs[m.ID]; excluded {
			return false
		}
	}

	if len(f.Types) > 0 && !slices.Contains(f.Types, m.Type) {
		return false
	}

	if f.Level != "" && !f.matchesLevel(m) {
		return false
	}

	if f.DSHigh > 0 && !f.matchesWindow(m) {
		return false
	}

	return true
}

// matchesLevel verifies the display level, on a single band or on any.
func (f *MusicFilter) matchesLevel(m *music.Music) bool {
	if f.Band >= 0 {
		return m.HasBand(f.Band) && m.Level[f.Band] == f.Level
	}

	return slices.Contains(m.Level, f.Level)
}

// matchesWindow verifies the decimal tier window, on a single band or on any.
func (f *MusicFilter) matchesWindow(m *music.Music) bool {
	if f.Band >= 0 {
		return m.HasBand(f.Band) && m.DS[f.Band] >= f.DSLow && m.DS[f.Band] <= f.DSHigh
	}

	for _, ds := range m.DS {
		if ds >= f.DSLow && ds <= f.DSHigh {
			return true
		}
	}
	return false
}
