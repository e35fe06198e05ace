// Package commands turns raw command text into typed queries.
// The dispatch layer upstream only trigger-matches, the grammar of every
// command family lives here.
package commands

import (
	"regexp"
	"strconv"
	"strings"
)

// Query is a parsed command of one of the command families.
type Query interface {
	isQuery()
}

// RandomSongQuery asks for a random chart matching the tokens.
type RandomSongQuery struct {
	Type  string
	Band  string
	Level string
}

// WhatToPlayQuery asks for a play recommendation.
type WhatToPlayQuery struct {
	Text string
}

// RatingTableQuery asks for the rating definition table of one level.
type RatingTableQuery struct {
	Level string
}

// RatingTablePerformanceQuery asks for the completion overlay of one level.
type RatingTablePerformanceQuery struct {
	Level string
	Plan  string
}

// PlateQuery asks for the plate progress or the plate completion table.
type PlateQuery struct {
	Version  string
	Plan     string
	Username string
	Progress bool
}

// RiseScoreQuery asks which charts to play to gain a rating delta.
type RiseScoreQuery struct {
	Level    string
	Score    int
	Username string
}

// LevelProcessQuery asks for the progress listing of one level and rank.
type LevelProcessQuery struct {
	Level    string
	Plan     string
	Category string
	Page     int
	Username string
}

// AchievementListQuery asks for the achievement listing of one level.
type AchievementListQuery struct {
	Level    string
	Page     int
	Username string
}

// RankingQuery asks for one page of the global leaderboard.
type RankingQuery struct {
	Name string
	Page int
}

func (RandomSongQuery) isQuery()             {}
func (WhatToPlayQuery) isQuery()             {}
func (RatingTableQuery) isQuery()            {}
func (RatingTablePerformanceQuery) isQuery() {}
func (PlateQuery) isQuery()                  {}
func (RiseScoreQuery) isQuery()              {}
func (LevelProcessQuery) isQuery()           {}
func (AchievementListQuery) isQuery()        {}
func (RankingQuery) isQuery()                {}

var (
	randomSongRe      = regexp.MustCompile(`^[随来给]个((?:dx|sd|标准))?([绿黄红紫白]?)([0-9]+\+?).*`)
	whatToPlayRe      = regexp.MustCompile(`.*mai.*什么(.+)?`)
	ratingTableRe     = regexp.MustCompile(`([0-9]+\+?)定数表`)
	ratingTablePfmRe  = regexp.MustCompile(`(?i)^([0-9]+\+?)(([apfc]+|\+)+)?完成表$`)
	plateTablePfmRe   = regexp.MustCompile(`^([真超檄橙暁晓桃櫻樱紫菫堇白雪輝辉舞霸熊華华爽煌星宙祭祝双宴镜])([極极将舞神者]舞?)完成表$`)
	riseScoreRe       = regexp.MustCompile(`^我要在?([0-9]+\+?)?[上加+]([0-9]+)?分\s?(.+)?`)
	plateProcessRe    = regexp.MustCompile(`^([真超檄橙暁晓桃櫻樱紫菫堇白雪輝辉舞霸熊華华爽煌星宙祭祝双宴镜])([極极将舞神者]舞?)进度\s?(.+)?`)
	levelProcessRe    = regexp.MustCompile(`(?i)^([0-9]+\+?)\s?([abcdsfxp+]+)\s?(\p{Han}+)?\s?进度\s?([0-9]+)?(.+)?`)
	achievementListRe = regexp.MustCompile(`^([0-9]+\.?[0-9]?\+?)\s?分数列表\s?([0-9]+)?\s?(.+)?`)
)

// ParseRandomSong matches the random chart grammar.
func ParseRandomSong(text string) (*RandomSongQuery, bool) {
	match := randomSongRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	return &RandomSongQuery{
		Type:  match[1],
		Band:  match[2],
		Level: match[3],
	}, true
}

// ParseWhatToPlay matches the recommendation grammar.
func ParseWhatToPlay(text string) (*WhatToPlayQuery, bool) {
	match := whatToPlayRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	return &WhatToPlayQuery{Text: match[1]}, true
}

// ParseRatingTable matches the rating table grammar.
func ParseRatingTable(text string) (*RatingTableQuery, bool) {
	match := ratingTableRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	return &RatingTableQuery{Level: strings.TrimSpace(match[1])}, true
}

// ParseRatingTablePerformance matches the completion table grammar.
func ParseRatingTablePerformance(text string) (*RatingTablePerformanceQuery, bool) {
	match := ratingTablePfmRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	return &RatingTablePerformanceQuery{
		Level: match[1],
		Plan:  strings.ToLower(match[2]),
	}, true
}

// ParsePlate matches both plate grammars, progress and completion table.
func ParsePlate(text string) (*PlateQuery, bool) {
	if match := plateProcessRe.FindStringSubmatch(text); match != nil {
		return &PlateQuery{
			Version:  match[1],
			Plan:     match[2],
			Username: strings.TrimSpace(match[3]),
			Progress: true,
		}, true
	}

	if match := plateTablePfmRe.FindStringSubmatch(text); match != nil {
		return &PlateQuery{
			Version: match[1],
			Plan:    match[2],
		}, true
	}

	return nil, false
}

// ParseRiseScore matches the score raise grammar.
func ParseRiseScore(text string) (*RiseScoreQuery, bool) {
	match := riseScoreRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	score, _ := strconv.Atoi(match[2])

	return &RiseScoreQuery{
		Level:    match[1],
		Score:    score,
		Username: strings.TrimSpace(match[3]),
	}, true
}

// ParseLevelProcess matches the level progress grammar.
func ParseLevelProcess(text string) (*LevelProcessQuery, bool) {
	match := levelProcessRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	// A missing or non-numeric page defaults to the first.
	page, err := strconv.Atoi(match[4])
	if err != nil || page < 1 {
		page = 1
	}

	return &LevelProcessQuery{
		Level:    match[1],
		Plan:     match[2],
		Category: match[3],
		Page:     page,
		Username: strings.TrimSpace(match[5]),
	}, true
}

// ParseAchievementList matches the achievement listing grammar.
func ParseAchievementList(text string) (*AchievementListQuery, bool) {
	match := achievementListRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}

	page, err := strconv.Atoi(match[2])
	if err != nil || page < 1 {
		page = 1
	}

	return &AchievementListQuery{
		Level:    match[1],
		Page:     page,
		Username: strings.TrimSpace(match[3]),
	}, true
}

// ParseRanking interprets the leaderboard argument: digits select a page,
// anything else narrows by name.
func ParseRanking(args string) *RankingQuery {
	args = strings.TrimSpace(args)

	if page, err := strconv.Atoi(args); err == nil && args != "" {
		return &RankingQuery{Page: page}
	}

	return &RankingQuery{Name: strings.ToLower(args), Page: 1}
}
