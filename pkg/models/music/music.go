package music

// Difficulty band names, ordered by band index.
var BandNames = []string{"绿", "黄", "红", "紫", "白"}

// BandIndex returns the band position for a band character, or -1 if unknown.
func BandIndex(band string) int {
	for i, name := range BandNames {
		if name == band {
			return i
		}
	}
	return -1
}

// Music is a single song of the catalogue, with one chart per difficulty band.
// DS and Level are parallel slices indexed by band.
type Music struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Type    string    `json:"type"`
	DS      []float64 `json:"ds"`
	Level   []string  `json:"level"`
	Artist  string    `json:"artist"`
	Genre   string    `json:"genre"`
	BPM     float64   `json:"bpm"`
	Version string    `json:"version"`
}

// HasBand verifies if the music has a chart on the given band index.
func (m *Music) HasBand(band int) bool {
	return band >= 0 && band < len(m.DS)
}
