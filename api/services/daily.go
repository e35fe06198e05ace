package services

import (
	"fmt"
	"hash/fnv"
	"maidx/api/cache"
	"maidx/api/dto"
	"time"
)

// The fixed 11-item activity vocabulary of the daily fortune.
var dailyActivities = []string{
	"拼机",
	"推分",
	"越级",
	"下埋",
	"夜勤",
	"练底力",
	"练手法",
	"打旧框",
	"干饭",
	"抓绝赞",
	"收歌",
}

// DailyService derives the deterministic per-day values of a user.
type DailyService struct {
	music *cache.MusicCache
}

// DailyServiceDeps is the dependency list for the daily service.
type DailyServiceDeps struct {
	Music *cache.MusicCache
}

// NewDailyService creates a daily service.
func NewDailyService(deps *DailyServiceDeps) *DailyService {
	return &DailyService{music: deps.Music}
}

// Fortune computes the daily payload for one user.
//
// The derivation is a fixed contract: two calls with the same user id and
// calendar day must return identical values across restarts, so everything
// flows from one FNV-1a hash of "<id>:<ISO date>". The luck value reads the
// hash untouched, each fortune slot consumes two bits, and the song of the
// day indexes the id-sorted catalogue with whatever is left.
func (ds *DailyService) Fortune(userID int64, day time.Time) *dto.DailyFortune {
	h := dailyHash(userID, day)

	fortune := &dto.DailyFortune{
		Luck: int(h % 100),
	}

	for _, activity := range dailyActivities {
		switch h & 3 {
		case 3:
			fortune.Favorable = append(fortune.Favorable, activity)
		case 0:
			fortune.Unfavorable = append(fortune.Unfavorable, activity)
		}
		h >>= 2
	}

	musics := ds.music.All()
	if len(musics) > 0 {
		fortune.Song = dto.FromMusic(musics[h%uint64(len(musics))])
	}

	return fortune
}

// dailyHash seeds the daily derivation from the user id and calendar day.
func dailyHash(userID int64, day time.Time) uint64 {
	hasher := fnv.New64a()
	fmt.Fprintf(hasher, "%d:%s", userID, day.Format("2006-01-02"))
	return hasher.Sum64()
}
