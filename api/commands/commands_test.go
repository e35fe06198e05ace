package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRandomSong(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *RandomSongQuery
		matched  bool
	}{
		{
			name:     "levelOnly",
			text:     "随个13",
			expected: &RandomSongQuery{Level: "13"},
			matched:  true,
		},
		{
			name:     "plusLevel",
			text:     "来个13+",
			expected: &RandomSongQuery{Level: "13+"},
			matched:  true,
		},
		{
			name:     "typeAndBand",
			text:     "给个dx紫14",
			expected: &RandomSongQuery{Type: "dx", Band: "紫", Level: "14"},
			matched:  true,
		},
		{
			name:     "standardType",
			text:     "随个标准白12",
			expected: &RandomSongQuery{Type: "标准", Band: "白", Level: "12"},
			matched:  true,
		},
		{
			name:    "noLevel",
			text:    "随个紫",
			matched: false,
		},
		{
			name:    "noTrigger",
			text:    "13",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, matched := ParseRandomSong(tt.text)
			assert.Equal(t, tt.matched, matched)
			if tt.matched {
				assert.Equal(t, tt.expected, query)
			}
		})
	}
}

func TestParseWhatToPlay(t *testing.T) {
	query, matched := ParseWhatToPlay("今天mai什么")
	assert.True(t, matched)
	assert.Equal(t, "", query.Text)

	query, matched = ParseWhatToPlay("今天mai什么推分")
	assert.True(t, matched)
	assert.Equal(t, "推分", query.Text)

	_, matched = ParseWhatToPlay("打什么")
	assert.False(t, matched)
}

func TestParseRatingTable(t *testing.T) {
	query, matched := ParseRatingTable("13+定数表")
	assert.True(t, matched)
	assert.Equal(t, "13+", query.Level)

	_, matched = ParseRatingTable("定数表")
	assert.False(t, matched)
}

func TestParseRatingTablePerformance(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *RatingTablePerformanceQuery
		matched  bool
	}{
		{
			name:     "plain",
			text:     "13完成表",
			expected: &RatingTablePerformanceQuery{Level: "13"},
			matched:  true,
		},
		{
			name:     "withComboPlan",
			text:     "14ap完成表",
			expected: &RatingTablePerformanceQuery{Level: "14", Plan: "ap"},
			matched:  true,
		},
		{
			name:    "noLevel",
			text:    "完成表",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, matched := ParseRatingTablePerformance(tt.text)
			assert.Equal(t, tt.matched, matched)
			if tt.matched {
				assert.Equal(t, tt.expected, query)
			}
		})
	}
}

func TestParsePlate(t *testing.T) {
	query, matched := ParsePlate("真将进度")
	assert.True(t, matched)
	assert.Equal(t, &PlateQuery{Version: "真", Plan: "将", Progress: true}, query)

	query, matched = ParsePlate("舞舞舞进度")
	assert.True(t, matched)
	assert.Equal(t, "舞", query.Version)
	assert.Equal(t, "舞舞", query.Plan)

	query, matched = ParsePlate("桃极进度 somebody")
	assert.True(t, matched)
	assert.Equal(t, "somebody", query.Username)

	query, matched = ParsePlate("祭神完成表")
	assert.True(t, matched)
	assert.Equal(t, &PlateQuery{Version: "祭", Plan: "神"}, query)

	_, matched = ParsePlate("进度")
	assert.False(t, matched)
}

func TestParseRiseScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *RiseScoreQuery
		matched  bool
	}{
		{
			name:     "levelAndScore",
			text:     "我要在13上5分",
			expected: &RiseScoreQuery{Level: "13", Score: 5},
			matched:  true,
		},
		{
			name:     "noLevel",
			text:     "我要上分",
			expected: &RiseScoreQuery{},
			matched:  true,
		},
		{
			name:     "withUsername",
			text:     "我要在14+加2分 somebody",
			expected: &RiseScoreQuery{Level: "14+", Score: 2, Username: "somebody"},
			matched:  true,
		},
		{
			name:    "unrelated",
			text:    "上分攻略",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, matched := ParseRiseScore(tt.text)
			assert.Equal(t, tt.matched, matched)
			if tt.matched {
				assert.Equal(t, tt.expected, query)
			}
		})
	}
}

func TestParseLevelProcess(t *testing.T) {
	query, matched := ParseLevelProcess("13+ sss 进度")
	assert.True(t, matched)
	assert.Equal(t, "13+", query.Level)
	assert.Equal(t, "sss", query.Plan)
	assert.Equal(t, 1, query.Page)

	query, matched = ParseLevelProcess("14ap进度2")
	assert.True(t, matched)
	assert.Equal(t, "14", query.Level)
	assert.Equal(t, "ap", query.Plan)
	assert.Equal(t, 2, query.Page)

	query, matched = ParseLevelProcess("13 s 已完成 进度")
	assert.True(t, matched)
	assert.Equal(t, "已完成", query.Category)

	_, matched = ParseLevelProcess("13进度")
	assert.False(t, matched)
}

func TestParseAchievementList(t *testing.T) {
	query, matched := ParseAchievementList("13分数列表")
	assert.True(t, matched)
	assert.Equal(t, "13", query.Level)
	assert.Equal(t, 1, query.Page)

	query, matched = ParseAchievementList("100.5分数列表 2")
	assert.True(t, matched)
	assert.Equal(t, "100.5", query.Level)
	assert.Equal(t, 2, query.Page)

	query, matched = ParseAchievementList("13+分数列表 3 somebody")
	assert.True(t, matched)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, "somebody", query.Username)

	_, matched = ParseAchievementList("分数列表")
	assert.False(t, matched)
}

func TestParseRanking(t *testing.T) {
	query := ParseRanking("3")
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, "", query.Name)

	query = ParseRanking("SomeBody")
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, "somebody", query.Name)

	query = ParseRanking("")
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, "", query.Name)
}
