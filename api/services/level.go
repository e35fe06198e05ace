package services

import (
	"context"
	"fmt"
	"maidx/api/cache"
	"maidx/api/dto"
	levelvalues "maidx/pkg/maivalues/level"
	rankvalues "maidx/pkg/maivalues/rank"
	"maidx/pkg/messages"
	"maidx/pkg/models/music"
	"maidx/provider"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Charts shown per page on the progress listings.
const pageSize = 25

// Chinese category tokens normalized to the three internal categories.
var categoryNames = map[string]string{
	"已完成": "completed",
	"未完成": "unfinished",
	"未开始": "notstarted",
	"未游玩": "notstarted",
}

// LevelService implements the level progress and achievement listings.
type LevelService struct {
	music   *cache.MusicCache
	players *PlayerService
}

// LevelServiceDeps is the dependency list for the level service.
type LevelServiceDeps struct {
	Music   *cache.MusicCache
	Players *PlayerService
}

// NewLevelService creates a level service.
func NewLevelService(deps *LevelServiceDeps) *LevelService {
	return &LevelService{
		music:   deps.Music,
		players: deps.Players,
	}
}

// LevelProcess lists the charts of one level against a target rank, split by
// completion category. Low level and rank combinations are refused outright.
func (ls *LevelService) LevelProcess(ctx context.Context, qqid int64, username string, level string, plan string, category string, page int) (*dto.ProgressPage, error) {
	levelIndex := levelvalues.Index(level)
	if levelIndex == -1 {
		return nil, Rejection(messages.UnknownLevel)
	}

	if !rankvalues.IsKnown(plan) {
		return nil, Rejection(messages.UnknownRank)
	}

	scoreIndex := rankvalues.ScoreIndex(plan)
	if levelIndex < levelvalues.ProcessFloorIndex || (scoreIndex != -1 && scoreIndex < rankvalues.ScoreFloorIndex) {
		return nil, Rejection(messages.NoAmbition)
	}

	if category != "" {
		normalized, exists := categoryNames[category]
		if !exists {
			return nil, Rejection(fmt.Sprintf(messages.CategoryRejectFmt, category))
		}
		category = normalized
	} else {
		category = "default"
	}

	records, err := ls.players.Records(ctx, qqid, username)
	if err != nil {
		return nil, err
	}
	index := recordIndex(records.Records)

	var rows []dto.ChartRow
	for _, m := range ls.music.All() {
		for band, lv := range m.Level {
			if lv != level {
				continue
			}

			record, played := index[recordKey{m.ID, band}]
			if !keepForCategory(category, played, played && meetsPlan(record, plan)) {
				continue
			}

			row := chartRow(m, band)
			if played {
				row.Achievement = record.Achievement
				row.Ra = record.Ra
				row.ComboFlag = record.ComboFlag
				row.SyncFlag = record.SyncFlag
			}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DS != rows[j].DS {
			return rows[i].DS < rows[j].DS
		}
		return rows[i].MusicID < rows[j].MusicID
	})

	paged, totalPages := paginate(rows, page)

	return &dto.ProgressPage{
		Username:   records.Username,
		Level:      level,
		Plan:       plan,
		Category:   category,
		Page:       page,
		TotalPages: totalPages,
		Rows:       paged,
	}, nil
}

// LevelAchievementList lists the player's records for one level, or above a
// literal achievement threshold when the token carries a decimal point.
func (ls *LevelService) LevelAchievementList(ctx context.Context, qqid int64, username string, token string, page int) (*dto.ProgressPage, error) {
	threshold := -1.0
	if strings.Contains(token, ".") {
		parsed, err := strconv.ParseFloat(token, 64)
		if err != nil {
			if !levelvalues.IsKnown(token) {
				return nil, Rejection(messages.UnknownLevel)
			}
		} else {
			threshold = math.Round(parsed*10) / 10
		}
	} else if !levelvalues.IsKnown(token) {
		return nil, Rejection(messages.UnknownLevel)
	}

	records, err := ls.players.Records(ctx, qqid, username)
	if err != nil {
		return nil, err
	}

	var rows []dto.ChartRow
	for _, record := range records.Records {
		if threshold >= 0 {
			if record.Achievement < threshold {
				continue
			}
		} else if record.Level != token {
			continue
		}

		rows = append(rows, recordRow(record))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Achievement != rows[j].Achievement {
			return rows[i].Achievement > rows[j].Achievement
		}
		return rows[i].MusicID < rows[j].MusicID
	})

	paged, totalPages := paginate(rows, page)

	return &dto.ProgressPage{
		Username:   records.Username,
		Level:      token,
		Page:       page,
		TotalPages: totalPages,
		Rows:       paged,
	}, nil
}

// meetsPlan verifies a record against a rank token of any vocabulary.
func meetsPlan(record provider.ScoreRecord, plan string) bool {
	if threshold, isScore := rankvalues.ScoreThreshold(plan); isScore {
		return record.Achievement >= threshold
	}
	if flag, isCombo := rankvalues.ComboFlagForRank(plan); isCombo {
		return rankvalues.ComboFlagIndex(record.ComboFlag) >= rankvalues.ComboFlagIndex(flag)
	}
	if flag, isSync := rankvalues.SyncFlagForRank(plan); isSync {
		return rankvalues.SyncFlagIndex(record.SyncFlag) >= rankvalues.SyncFlagIndex(flag)
	}
	return false
}

// keepForCategory decides if a chart belongs on the requested category.
// The default view lists everything still missing the target.
func keepForCategory(category string, played bool, completed bool) bool {
	switch category {
	case "completed":
		return completed
	case "unfinished":
		return played && !completed
	case "notstarted":
		return !played
	default:
		return !completed
	}
}

// recordRow builds the renderable row of one achievement record.
func recordRow(record provider.ScoreRecord) dto.ChartRow {
	band := ""
	if record.LevelIndex >= 0 && record.LevelIndex < len(music.BandNames) {
		band = music.BandNames[record.LevelIndex]
	}

	return dto.ChartRow{
		MusicID:     record.MusicID,
		Title:       record.Title,
		Type:        record.Type,
		Band:        band,
		Level:       record.Level,
		DS:          record.DS,
		Achievement: record.Achievement,
		Ra:          record.Ra,
		ComboFlag:   record.ComboFlag,
		SyncFlag:    record.SyncFlag,
	}
}

// paginate slices the rows on a 1-indexed page.
func paginate(rows []dto.ChartRow, page int) ([]dto.ChartRow, int) {
	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil, totalPages
	}

	end := min(start+pageSize, len(rows))
	return rows[start:end], totalPages
}
