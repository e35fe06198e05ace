package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestDailyService() *DailyService {
	return NewDailyService(&DailyServiceDeps{Music: newTestMusicCache()})
}

func TestFortuneDeterministic(t *testing.T) {
	service := newTestDailyService()
	day := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	first := service.Fortune(1234, day)
	second := service.Fortune(1234, day)

	// Same user and calendar day always derive the same payload.
	assert.Equal(t, first, second)

	// The wall clock time within the day doesn't matter.
	later := service.Fortune(1234, day.Add(10*time.Hour))
	assert.Equal(t, first, later)
}

func TestFortuneVariesAcrossDays(t *testing.T) {
	service := newTestDailyService()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := service.Fortune(1234, day)
	tomorrow := service.Fortune(1234, day.AddDate(0, 0, 1))

	assert.NotEqual(t, today, tomorrow)
}

func TestFortuneBounds(t *testing.T) {
	service := newTestDailyService()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for userID := int64(0); userID < 50; userID++ {
		fortune := service.Fortune(userID, day)

		assert.GreaterOrEqual(t, fortune.Luck, 0)
		assert.Less(t, fortune.Luck, 100)
		assert.NotNil(t, fortune.Song)

		// An activity is never favorable and unfavorable at once.
		unfavorable := make(map[string]bool, len(fortune.Unfavorable))
		for _, activity := range fortune.Unfavorable {
			unfavorable[activity] = true
		}
		for _, activity := range fortune.Favorable {
			assert.False(t, unfavorable[activity])
		}
	}
}

func TestFortuneEmptyCatalogue(t *testing.T) {
	service := NewDailyService(&DailyServiceDeps{Music: newEmptyMusicCache()})
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	fortune := service.Fortune(1234, day)
	assert.Nil(t, fortune.Song)
}
