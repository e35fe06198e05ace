package repositories

import (
	"fmt"
	"maidx/pkg/database"
	"maidx/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type CacheRepository interface {
	GetKey(key string) (string, error)
	GetByPrefix(prefix string) ([]*models.CacheBackup, error)
	SetKey(key string, value string) error
}

// Cache repository structure.
type cacheRepository struct {
	db *gorm.DB
}

// Create a cache repository.
func NewCacheRepository() (CacheRepository, error) {
	db, err := database.GetConnection()
	if err != nil {
		return nil, fmt.Errorf("couldn't get database connection: %w", err)
	}
	return &cacheRepository{db: db}, nil
}

// NewCacheRepositoryWithDB creates a cache repository on a given connection.
func NewCacheRepositoryWithDB(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

// GetKey gets the given key value.
// Should be used as a Redis fallback.
func (cr *cacheRepository) GetKey(key string) (string, error) {
	cacheEntry := &models.CacheBackup{
		CacheKey: key,
	}

	err := cr.db.Where(&cacheEntry).First(&cacheEntry).Error
	if err != nil {
		return "", err
	}

	return cacheEntry.CacheValue, nil
}

// GetByPrefix gets every stored key under the given prefix.
// Should be used as a Redis fallback.
func (cr *cacheRepository) GetByPrefix(prefix string) ([]*models.CacheBackup, error) {
	var cacheEntries []*models.CacheBackup

	if err := cr.db.Where("cache_key LIKE ?", prefix+"%").Find(&cacheEntries).Error; err != nil {
		return nil, err
	}

	return cacheEntries, nil
}

// SetKey upserts the given key value.
func (cr *cacheRepository) SetKey(key string, value string) error {
	entry := &models.CacheBackup{
		CacheKey:   key,
		CacheValue: value,
	}

	return cr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_value"}),
	}).Create(entry).Error
}
