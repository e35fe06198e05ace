package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"maidx/pkg/config"
	"maidx/pkg/messages"
	"maidx/pkg/models/music"
	"maidx/provider/requests"
	"net/http"
	"strconv"
)

// Raw music entry as returned by the catalogue provider.
// The id arrives as a string and the metadata sits on a nested object.
type rawMusic struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	DS        []float64 `json:"ds"`
	Level     []string  `json:"level"`
	BasicInfo struct {
		Title   string  `json:"title"`
		Artist  string  `json:"artist"`
		Genre   string  `json:"genre"`
		BPM     float64 `json:"bpm"`
		Version string  `json:"from"`
	} `json:"basic_info"`
}

// Alias holds every alternate name of a single music.
type Alias struct {
	MusicID int      `json:"SongID"`
	Name    string   `json:"Name"`
	Aliases []string `json:"Alias"`
}

// MusicData fetches the full chart list from the catalogue provider.
func MusicData(ctx context.Context) ([]*music.Music, error) {
	url := config.Provider.BaseURL + "/music_data"
	resp, err := requests.Request(ctx, url, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	var raw []rawMusic
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	musics := make([]*music.Music, 0, len(raw))
	for _, entry := range raw {
		converted, err := convertMusic(entry)
		if err != nil {
			return nil, err
		}
		musics = append(musics, converted)
	}

	return musics, nil
}

// MusicAlias fetches the alias table from the catalogue provider.
func MusicAlias(ctx context.Context) ([]*Alias, error) {
	url := config.Provider.AliasURL
	resp, err := requests.Request(ctx, url, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	var body struct {
		Content []*Alias `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return body.Content, nil
}

// convertMusic maps a raw provider entry into the domain model.
func convertMusic(entry rawMusic) (*music.Music, error) {
	id, err := strconv.Atoi(entry.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid music id %q: %w", entry.ID, err)
	}

	return &music.Music{
		ID:      id,
		Title:   entry.Title,
		Type:    entry.Type,
		DS:      entry.DS,
		Level:   entry.Level,
		Artist:  entry.BasicInfo.Artist,
		Genre:   entry.BasicInfo.Genre,
		BPM:     entry.BasicInfo.BPM,
		Version: entry.BasicInfo.Version,
	}, nil
}
