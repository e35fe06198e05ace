package services

import (
	"context"
	"maidx/api/cache"
	"maidx/api/dto"
	levelvalues "maidx/pkg/maivalues/level"
	rankvalues "maidx/pkg/maivalues/rank"
	"maidx/pkg/maivalues/rating"
	"maidx/pkg/messages"
	"maidx/provider"
	"sort"
)

// ScoreService implements the score raise recommendation.
type ScoreService struct {
	music   *cache.MusicCache
	players *PlayerService
}

// ScoreServiceDeps is the dependency list for the score service.
type ScoreServiceDeps struct {
	Music   *cache.MusicCache
	Players *PlayerService
}

// NewScoreService creates a score service.
func NewScoreService(deps *ScoreServiceDeps) *ScoreService {
	return &ScoreService{
		music:   deps.Music,
		players: deps.Players,
	}
}

// RiseScore recommends charts whose next reachable score rank yields at
// least the requested rating delta. With a level filter the catalogue
// widens the pool with charts of that level the player never touched.
// An explicit username always wins over the caller's qq id.
func (ss *ScoreService) RiseScore(ctx context.Context, qqid int64, username string, level string, delta int) (*dto.RiseScoreResult, error) {
	if level != "" && !levelvalues.IsKnown(level) {
		return nil, Rejection(messages.UnknownLevel)
	}
	if delta <= 0 {
		delta = 1
	}

	records, err := ss.players.Records(ctx, qqid, username)
	if err != nil {
		return nil, err
	}

	result := &dto.RiseScoreResult{Username: records.Username}

	for _, record := range records.Records {
		if level != "" && record.Level != level {
			continue
		}
		if record.Achievement >= rating.AchievementCap {
			continue
		}

		// Walk the rank thresholds upward until one covers the delta.
		for _, rank := range rankvalues.ScoreRanks() {
			threshold, _ := rankvalues.ScoreThreshold(rank)
			if threshold <= record.Achievement {
				continue
			}

			gain := rating.Compute(record.DS, threshold) - record.Ra
			if gain < delta {
				continue
			}

			result.Suggestions = append(result.Suggestions, dto.RiseScoreSuggestion{
				Chart:             recordRow(record),
				TargetAchievement: threshold,
				TargetRank:        rank,
				RatingGain:        gain,
			})
			break
		}
	}

	if level != "" {
		ss.appendUnplayed(result, recordIndex(records.Records), level, delta)
	}

	// The closest targets first.
	sort.Slice(result.Suggestions, func(i, j int) bool {
		left := result.Suggestions[i].TargetAchievement - result.Suggestions[i].Chart.Achievement
		right := result.Suggestions[j].TargetAchievement - result.Suggestions[j].Chart.Achievement
		return left < right
	})

	if len(result.Suggestions) > pageSize {
		result.Suggestions = result.Suggestions[:pageSize]
	}

	return result, nil
}

// appendUnplayed adds the untouched charts of the level whose lowest
// scored rank already covers the delta.
func (ss *ScoreService) appendUnplayed(result *dto.RiseScoreResult, index map[recordKey]provider.ScoreRecord, level string, delta int) {
	for _, m := range ss.music.All() {
		for band, chartLevel := range m.Level {
			if chartLevel != level {
				continue
			}
			if _, played := index[recordKey{m.ID, band}]; played {
				continue
			}

			for _, rank := range rankvalues.ScoreRanks() {
				threshold, _ := rankvalues.ScoreThreshold(rank)
				if threshold <= 0 {
					continue
				}

				gain := rating.Compute(m.DS[band], threshold)
				if gain < delta {
					continue
				}

				result.Suggestions = append(result.Suggestions, dto.RiseScoreSuggestion{
					Chart:             chartRow(m, band),
					TargetAchievement: threshold,
					TargetRank:        rank,
					RatingGain:        gain,
				})
				break
			}
		}
	}
}
