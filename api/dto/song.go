package dto

import "maidx/pkg/models/music"

// SongInfo is the renderable card of a single music.
type SongInfo struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Type    string    `json:"type"`
	Artist  string    `json:"artist"`
	Genre   string    `json:"genre"`
	BPM     float64   `json:"bpm"`
	Version string    `json:"version"`
	Level   []string  `json:"level"`
	DS      []float64 `json:"ds"`
}

// FromMusic converts a catalogue music into its renderable card.
func FromMusic(m *music.Music) *SongInfo {
	return &SongInfo{
		ID:      m.ID,
		Title:   m.Title,
		Type:    m.Type,
		Artist:  m.Artist,
		Genre:   m.Genre,
		BPM:     m.BPM,
		Version: m.Version,
		Level:   m.Level,
		DS:      m.DS,
	}
}
