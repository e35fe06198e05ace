package services

import (
	"context"
	"maidx/pkg/messages"
	"maidx/provider"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestScoreService(client PlayerClient) *ScoreService {
	return NewScoreService(&ScoreServiceDeps{
		Music:   newTestMusicCache(),
		Players: newTestPlayerService(client),
	})
}

func TestRiseScoreUnknownLevel(t *testing.T) {
	service := newTestScoreService(new(mockPlayerClient))

	_, err := service.RiseScore(context.Background(), 1234, "", "16", 1)
	assert.Equal(t, Rejection(messages.UnknownLevel), err)
}

func TestRiseScore(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestScoreService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			// 13.0 at ss: the next ranks keep gaining rating.
			{MusicID: 1, LevelIndex: 3, Level: "13", DS: 13.0, Achievement: 99.0, Ra: 270},
			// Already at the cap, nothing to gain.
			{MusicID: 2, LevelIndex: 3, Level: "12+", DS: 12.7, Achievement: 100.5, Ra: 286},
		},
	}, nil)

	result, err := service.RiseScore(context.Background(), 1234, "", "", 2)
	assert.NoError(t, err)

	assert.Equal(t, "tester", result.Username)
	assert.Len(t, result.Suggestions, 1)

	suggestion := result.Suggestions[0]
	assert.Equal(t, 1, suggestion.Chart.MusicID)
	assert.Equal(t, "ss+", suggestion.TargetRank)
	assert.Equal(t, 99.5, suggestion.TargetAchievement)
	assert.GreaterOrEqual(t, suggestion.RatingGain, 2)

	client.AssertExpectations(t)
}

func TestRiseScoreSuggestsUnplayed(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestScoreService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", DS: 13.0, Achievement: 99.0, Ra: 270},
		},
	}, nil)

	result, err := service.RiseScore(context.Background(), 1234, "", "13", 1)
	assert.NoError(t, err)

	// The played chart comes first, the untouched catalogue chart of the
	// same level follows with its lowest scored rank.
	assert.Len(t, result.Suggestions, 2)
	assert.Equal(t, 1, result.Suggestions[0].Chart.MusicID)
	assert.Equal(t, 3, result.Suggestions[1].Chart.MusicID)
	assert.Equal(t, "c", result.Suggestions[1].TargetRank)
	assert.Equal(t, 50.0, result.Suggestions[1].TargetAchievement)
	assert.Equal(t, 52, result.Suggestions[1].RatingGain)

	client.AssertExpectations(t)
}

func TestRiseScoreLevelFilter(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestScoreService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", DS: 13.0, Achievement: 99.0, Ra: 270},
			{MusicID: 3, LevelIndex: 3, Level: "12", DS: 12.0, Achievement: 99.0, Ra: 249},
		},
	}, nil)

	result, err := service.RiseScore(context.Background(), 1234, "", "13", 1)
	assert.NoError(t, err)
	assert.Len(t, result.Suggestions, 1)
	assert.Equal(t, 1, result.Suggestions[0].Chart.MusicID)

	client.AssertExpectations(t)
}
