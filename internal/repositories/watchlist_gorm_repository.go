package repositories

import (
	"errors"
	"fmt"

	"commerce/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWatchlistRepository is a GORM implementation of WatchlistRepository.
type GORMWatchlistRepository struct {
	db *gorm.DB
}

// NewGORMWatchlistRepository creates a new instance of GORMWatchlistRepository.
func NewGORMWatchlistRepository(db *gorm.DB) *GORMWatchlistRepository {
	return &GORMWatchlistRepository{
		db: db,
	}
}

// Add records a watchlist membership. FirstOrCreate makes a repeated add a
// no-op, and the unique index on (listing_id, watcher_id) arbitrates the
// concurrent-duplicate case; a duplicate-key error from that race is treated
// as the membership already existing.
func (r *GORMWatchlistRepository) Add(watcherID, listingID string) error {
	item := models.WatchlistItem{ListingID: listingID, WatcherID: watcherID}
	err := r.db.Where(models.WatchlistItem{ListingID: listingID, WatcherID: watcherID}).
		Attrs(models.WatchlistItem{ID: uuid.New().String()}).
		FirstOrCreate(&item).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to add listing %s to watchlist: %w", listingID, err)
	}
	return nil
}

// Remove deletes a watchlist membership. Removing an absent membership is a
// success no-op.
func (r *GORMWatchlistRepository) Remove(watcherID, listingID string) error {
	err := r.db.Where("watcher_id = ? AND listing_id = ?", watcherID, listingID).
		Delete(&models.WatchlistItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove listing %s from watchlist: %w", listingID, err)
	}
	return nil
}

// Contains reports whether the watcher tracks the listing.
func (r *GORMWatchlistRepository) Contains(watcherID, listingID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.WatchlistItem{}).
		Where("watcher_id = ? AND listing_id = ?", watcherID, listingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check watchlist membership: %w", err)
	}
	return count > 0, nil
}

// ListingsFor returns the watcher's listings, most recently added first.
func (r *GORMWatchlistRepository) ListingsFor(watcherID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.
		Joins("JOIN watchlist_items ON watchlist_items.listing_id = listings.id").
		Where("watchlist_items.watcher_id = ?", watcherID).
		Order("watchlist_items.created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist for user %s: %w", watcherID, err)
	}
	return listings, nil
}
