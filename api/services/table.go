package services

import (
	"context"
	"maidx/api/cache"
	"maidx/api/dto"
	levelvalues "maidx/pkg/maivalues/level"
	platevalues "maidx/pkg/maivalues/plate"
	rankvalues "maidx/pkg/maivalues/rank"
	"maidx/pkg/messages"
	"maidx/pkg/models/music"
	"maidx/provider"
	"slices"
	"sort"
)

// Plates only span the basic to master bands, the white band never counts.
const plateBandCount = 4

// TableService implements the rating table and plate progress queries.
type TableService struct {
	music   *cache.MusicCache
	players *PlayerService
}

// TableServiceDeps is the dependency list for the table service.
type TableServiceDeps struct {
	Music   *cache.MusicCache
	Players *PlayerService
}

// NewTableService creates a table service.
func NewTableService(deps *TableServiceDeps) *TableService {
	return &TableService{
		music:   deps.Music,
		players: deps.Players,
	}
}

// RatingTable builds the rating definition table for one display level.
// Only lv7 and above have a table, lower levels are a deliberate refusal.
func (ts *TableService) RatingTable(level string) (*dto.RatingTable, error) {
	if !levelvalues.IsKnown(level) {
		return nil, Rejection(messages.UnknownTableLevel)
	}
	if !levelvalues.TableSupported(level) {
		return nil, Rejection(messages.TableLevelOnly)
	}

	return ts.buildTable(level, nil), nil
}

// RatingTablePerformance overlays the player's achievements on the rating
// table of one display level. The rows carry both the combo and sync flags,
// the renderer picks the column the plan asked for.
func (ts *TableService) RatingTablePerformance(ctx context.Context, qqid int64, level string) (*dto.RatingTable, error) {
	if !levelvalues.IsKnown(level) {
		return nil, Rejection(messages.UnknownTableLevel)
	}
	if !levelvalues.TableSupported(level) {
		return nil, Rejection(messages.TablePlanOnly)
	}

	records, err := ts.players.Records(ctx, qqid, "")
	if err != nil {
		return nil, err
	}

	return ts.buildTable(level, recordIndex(records.Records)), nil
}

// buildTable collects every chart of the level, grouped by decimal tier
// descending. When a record index is given the rows carry the achievements.
func (ts *TableService) buildTable(level string, records map[recordKey]provider.ScoreRecord) *dto.RatingTable {
	groups := make(map[float64][]dto.ChartRow)

	for _, m := range ts.music.All() {
		for band, lv := range m.Level {
			if lv != level {
				continue
			}

			row := chartRow(m, band)
			if record, played := records[recordKey{m.ID, band}]; played {
				row.Achievement = record.Achievement
				row.Ra = record.Ra
				row.ComboFlag = record.ComboFlag
				row.SyncFlag = record.SyncFlag
			}

			groups[m.DS[band]] = append(groups[m.DS[band]], row)
		}
	}

	tiers := make([]float64, 0, len(groups))
	for tier := range groups {
		tiers = append(tiers, tier)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(tiers)))

	table := &dto.RatingTable{Level: level}
	for _, tier := range tiers {
		table.Groups = append(table.Groups, dto.RatingTableGroup{
			DS:     tier,
			Charts: groups[tier],
		})
	}

	return table
}

// PlateProgress computes how far a player is on one collection plate.
// The version token goes through the synonym table first, then the two
// deliberate refusals, and only then the record fetch happens.
func (ts *TableService) PlateProgress(ctx context.Context, qqid int64, username string, version string, plan string) (*dto.PlateProgress, error) {
	version = platevalues.Normalize(version)

	if platevalues.Unsupported(version) {
		return nil, Rejection(messages.PlateUnsupported)
	}
	if platevalues.Invalid(version, plan) {
		return nil, Rejection(messages.PlateNotExist)
	}

	gameVersions, exists := platevalues.Versions(version)
	if !exists {
		return nil, Rejection(messages.UnknownPlate)
	}

	requirement, exists := platevalues.PlanRequirement(plan)
	if !exists {
		return nil, Rejection(messages.UnknownPlate)
	}

	records, err := ts.players.Records(ctx, qqid, username)
	if err != nil {
		return nil, err
	}
	index := recordIndex(records.Records)

	progress := &dto.PlateProgress{
		Version:  version,
		Plan:     plan,
		Username: records.Username,
	}

	for band := 0; band < plateBandCount; band++ {
		done, total := 0, 0

		for _, m := range ts.music.All() {
			if !slices.Contains(gameVersions, m.Version) || !m.HasBand(band) {
				continue
			}

			total++
			record, played := index[recordKey{m.ID, band}]
			if played && meetsRequirement(record, requirement) {
				done++
				continue
			}

			// The master band remainder feeds the rendered table.
			if band == plateBandCount-1 {
				row := chartRow(m, band)
				if played {
					row.Achievement = record.Achievement
					row.Ra = record.Ra
					row.ComboFlag = record.ComboFlag
					row.SyncFlag = record.SyncFlag
				}
				progress.Remaining = append(progress.Remaining, row)
			}
		}

		progress.Bands = append(progress.Bands, dto.PlateBandProgress{
			Band:  music.BandNames[band],
			Done:  done,
			Total: total,
		})
	}

	return progress, nil
}

// meetsRequirement verifies a record against a plate plan requirement.
func meetsRequirement(record provider.ScoreRecord, req platevalues.Requirement) bool {
	if req.MinAchievement > 0 {
		return record.Achievement >= req.MinAchievement
	}
	if req.MinComboFlag != "" {
		return rankvalues.ComboFlagIndex(record.ComboFlag) >= rankvalues.ComboFlagIndex(req.MinComboFlag)
	}
	if req.MinSyncFlag != "" {
		return rankvalues.SyncFlagIndex(record.SyncFlag) >= rankvalues.SyncFlagIndex(req.MinSyncFlag)
	}
	return false
}

// recordKey identifies a (music, band) pair.
type recordKey struct {
	musicID int
	band    int
}

// recordIndex maps every record by its (music, band) pair.
func recordIndex(records []provider.ScoreRecord) map[recordKey]provider.ScoreRecord {
	index := make(map[recordKey]provider.ScoreRecord, len(records))
	for _, record := range records {
		index[recordKey{record.MusicID, record.LevelIndex}] = record
	}
	return index
}

// chartRow builds the renderable row of one chart.
func chartRow(m *music.Music, band int) dto.ChartRow {
	return dto.ChartRow{
		MusicID: m.ID,
		Title:   m.Title,
		Type:    m.Type,
		Band:    music.BandNames[band],
		Level:   m.Level[band],
		DS:      m.DS[band],
	}
}
