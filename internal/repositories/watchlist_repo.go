package repositories

import "commerce/internal/models"

// WatchlistRepository defines the interface for watchlist data access.
// Add and Remove are idempotent: adding a present membership and removing an
// absent one are both success no-ops.
type WatchlistRepository interface {
	Add(watcherID, listingID string) error
	Remove(watcherID, listingID string) error
	Contains(watcherID, listingID string) (bool, error)
	// ListingsFor returns the watched listings, most recently added first.
	ListingsFor(watcherID string) ([]models.Listing, error)
}
