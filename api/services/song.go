package services

import (
	"context"
	"errors"
	"maidx/api/cache"
	"maidx/api/dto"
	"maidx/api/filters"
	"maidx/pkg/messages"
	"maidx/pkg/models/music"
	"maidx/provider"
	"math"
	"math/rand"
	"strings"
)

// Achievement at which a chart can't contribute more rating.
const maxedAchievement = 100.5

// Empirical divisor turning a rating contribution back into a decimal tier.
const raToTierDivisor = 22.4

// Markers of a raise-my-rating intent on the free text.
var raiseMarkers = []string{"推分", "上分", "加分"}

// SongService implements the random and recommendation lookups.
type SongService struct {
	music   *cache.MusicCache
	players *PlayerService
}

// SongServiceDeps is the dependency list for the song service.
type SongServiceDeps struct {
	Music   *cache.MusicCache
	Players *PlayerService
}

// NewSongService creates a song service.
func NewSongService(deps *SongServiceDeps) *SongService {
	return &SongService{
		music:   deps.Music,
		players: deps.Players,
	}
}

// RandomSong picks a uniform random chart matching the parsed tokens.
// An empty match is a normal reply, not an error.
func (ss *SongService) RandomSong(typeToken string, bandToken string, levelToken string) (*dto.SongInfo, error) {
	f := filters.NewMusicFilter()
	f.Types = chartTypes(typeToken)
	f.Level = levelToken

	if bandToken != "" {
		f.Band = music.BandIndex(bandToken)
	}

	picked, err := ss.music.Random(f)
	if err != nil {
		if errors.Is(err, cache.ErrEmptyCatalogue) {
			return nil, Rejection(messages.RandomEmpty)
		}
		return nil, err
	}

	return dto.FromMusic(picked), nil
}

// WhatToPlay recommends a chart. By default it's fully random. When the text
// carries a raise-rating intent, it narrows the pick to the tier window the
// player's weakest best-list entry points at, skipping charts that are
// already maxed out. Account resolution failures degrade back to the plain
// random pick.
func (ss *SongService) WhatToPlay(ctx context.Context, qqid int64, text string) (*dto.SongInfo, error) {
	picked, err := ss.music.Random(filters.NewMusicFilter())
	if err != nil {
		return nil, err
	}

	if !hasRaiseIntent(text) {
		return dto.FromMusic(picked), nil
	}

	best, err := ss.players.Best(ctx, qqid, "")
	if err != nil {
		if errors.Is(err, provider.ErrUserNotFound) || errors.Is(err, provider.ErrUserDisabledQuery) {
			// No usable account, keep the unconditional pick.
			return dto.FromMusic(picked), nil
		}
		return nil, err
	}

	pool := best.Charts.SD
	if rand.Intn(2) == 1 {
		pool = best.Charts.DX
	}

	if len(pool) == 0 {
		return dto.FromMusic(picked), nil
	}

	lowestRa := pool[len(pool)-1].Ra
	if lowestRa == 0 {
		return dto.FromMusic(picked), nil
	}

	exclude := make(map[int]struct{})
	for _, record := range pool {
		if record.Achievement >= maxedAchievement {
			exclude[record.MusicID] = struct{}{}
		}
	}

	tier := math.Round(float64(lowestRa)/raToTierDivisor*10) / 10

	f := filters.NewMusicFilter()
	f.DSLow = tier
	f.DSHigh = tier + 1
	f.ExcludeIDs = exclude

	narrowed, err := ss.music.Random(f)
	if err != nil {
		// Nothing inside the window, keep the unconditional pick.
		return dto.FromMusic(picked), nil
	}

	return dto.FromMusic(narrowed), nil
}

// chartTypes expands a type token into the chart variant pools it covers.
func chartTypes(token string) []string {
	switch strings.ToLower(token) {
	case "dx":
		return []string{"DX"}
	case "sd", "标准":
		return []string{"SD"}
	default:
		return []string{"SD", "DX"}
	}
}

// hasRaiseIntent verifies if the text asks for a rating raise.
func hasRaiseIntent(text string) bool {
	for _, marker := range raiseMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
