package jobs

import (
	"context"
	"log"
	"maidx/api/cache"
	"maidx/api/repositories"
	"time"
)

// Upper bound for a full catalogue and alias fetch.
const refreshTimeout = 5 * time.Minute

// RefreshCatalogue refetches the full music catalogue and alias table,
// swapping the in-memory snapshot and rewriting the stored copies.
func RefreshCatalogue(repo repositories.CacheRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	musicCache := cache.GetMusicCache()
	if err := musicCache.Refresh(ctx, repo); err != nil {
		log.Printf("Couldn't refresh the catalogue: %v", err)
		return
	}

	log.Printf("Catalogue refreshed, %d musics loaded.", musicCache.Size())
}
