package services

import (
	"context"
	"fmt"
	"maidx/pkg/messages"
	"maidx/provider"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLevelService(client PlayerClient) *LevelService {
	return NewLevelService(&LevelServiceDeps{
		Music:   newTestMusicCache(),
		Players: newTestPlayerService(client),
	})
}

func TestLevelProcessRejections(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	tests := []struct {
		name          string
		level         string
		plan          string
		category      string
		expectedError error
	}{
		{
			name:          "unknownLevel",
			level:         "16",
			plan:          "sss",
			expectedError: Rejection(messages.UnknownLevel),
		},
		{
			name:          "unknownRank",
			level:         "13",
			plan:          "xyz",
			expectedError: Rejection(messages.UnknownRank),
		},
		{
			name:          "levelTooLow",
			level:         "9",
			plan:          "sss",
			expectedError: Rejection(messages.NoAmbition),
		},
		{
			name:          "rankTooLow",
			level:         "13",
			plan:          "a",
			expectedError: Rejection(messages.NoAmbition),
		},
		{
			name:          "unknownCategory",
			level:         "13",
			plan:          "sss",
			category:      "别的",
			expectedError: Rejection(fmt.Sprintf(messages.CategoryRejectFmt, "别的")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.LevelProcess(context.Background(), 1234, "", tt.level, tt.plan, tt.category, 1)
			assert.Equal(t, tt.expectedError, err)
		})
	}

	// Every rejection happens before any record fetch.
	client.AssertNotCalled(t, "QueryUserAll")
}

func TestLevelProcessFloorBoundary(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
	}, nil)

	// "9" is under the floor, "9+" is the first level accepted.
	page, err := service.LevelProcess(context.Background(), 1234, "", "9+", "sss", "", 1)
	assert.NoError(t, err)
	assert.Equal(t, "tester", page.Username)

	client.AssertExpectations(t)
}

func TestLevelProcessDefaultCategory(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	// Music 1 already cleared the target, music 3 is still missing it.
	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", Achievement: 100.2, Ra: 290},
			{MusicID: 3, LevelIndex: 3, Level: "13", Achievement: 98.0, Ra: 260},
		},
	}, nil)

	page, err := service.LevelProcess(context.Background(), 1234, "", "13", "sss", "", 1)
	assert.NoError(t, err)

	assert.Equal(t, "tester", page.Username)
	assert.Equal(t, "default", page.Category)
	assert.Len(t, page.Rows, 1)
	assert.Equal(t, 3, page.Rows[0].MusicID)
	assert.Equal(t, 98.0, page.Rows[0].Achievement)

	client.AssertExpectations(t)
}

func TestLevelProcessCategories(t *testing.T) {
	records := &provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", Achievement: 100.2},
		},
	}

	tests := []struct {
		name        string
		category    string
		expectedIDs []int
	}{
		{
			name:        "completed",
			category:    "已完成",
			expectedIDs: []int{1},
		},
		{
			name:        "unfinished",
			category:    "未完成",
			expectedIDs: nil,
		},
		{
			name:        "notStarted",
			category:    "未游玩",
			expectedIDs: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockPlayerClient)
			service := newTestLevelService(client)
			client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(records, nil)

			page, err := service.LevelProcess(context.Background(), 1234, "", "13", "sss", tt.category, 1)
			assert.NoError(t, err)

			var ids []int
			for _, row := range page.Rows {
				ids = append(ids, row.MusicID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestLevelProcessComboPlan(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", ComboFlag: "fcp"},
			{MusicID: 3, LevelIndex: 3, Level: "13", ComboFlag: ""},
		},
	}, nil)

	// fc+ on music 1 covers the fc plan, music 3 is the one left.
	page, err := service.LevelProcess(context.Background(), 1234, "", "13", "fc", "", 1)
	assert.NoError(t, err)
	assert.Len(t, page.Rows, 1)
	assert.Equal(t, 3, page.Rows[0].MusicID)

	client.AssertExpectations(t)
}

func TestLevelAchievementList(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", Achievement: 99.1, Title: "Alpha"},
			{MusicID: 3, LevelIndex: 3, Level: "13", Achievement: 100.3, Title: "Gamma"},
			{MusicID: 2, LevelIndex: 3, Level: "12+", Achievement: 100.5, Title: "Beta"},
		},
	}, nil)

	// Level token keeps only the lv13 records, best achievement first.
	page, err := service.LevelAchievementList(context.Background(), 1234, "", "13", 1)
	assert.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 3, page.Rows[0].MusicID)
	assert.Equal(t, 1, page.Rows[1].MusicID)

	client.AssertExpectations(t)
}

func TestLevelAchievementListThreshold(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
		Records: []provider.ScoreRecord{
			{MusicID: 1, LevelIndex: 3, Level: "13", Achievement: 99.1},
			{MusicID: 3, LevelIndex: 3, Level: "13", Achievement: 100.3},
			{MusicID: 2, LevelIndex: 3, Level: "12+", Achievement: 100.5},
		},
	}, nil)

	// A decimal token is an achievement floor across every level.
	page, err := service.LevelAchievementList(context.Background(), 1234, "", "100.0", 1)
	assert.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 2, page.Rows[0].MusicID)
	assert.Equal(t, 3, page.Rows[1].MusicID)

	client.AssertExpectations(t)
}

func TestLevelAchievementListUnknownToken(t *testing.T) {
	service := newTestLevelService(new(mockPlayerClient))

	_, err := service.LevelAchievementList(context.Background(), 1234, "", "16", 1)
	assert.Equal(t, Rejection(messages.UnknownLevel), err)
}

func TestPaginate(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestLevelService(client)

	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
	}, nil)

	// An empty listing still reports one page.
	page, err := service.LevelProcess(context.Background(), 1234, "", "13", "sss", "已完成", 5)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Rows)
}
