package dto

// DailyFortune is the deterministic daily payload of one user.
type DailyFortune struct {
	Luck        int       `json:"luck"`
	Favorable   []string  `json:"favorable"`
	Unfavorable []string  `json:"unfavorable"`
	Song        *SongInfo `json:"song"`
}
