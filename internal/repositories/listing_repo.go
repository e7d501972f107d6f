package repositories

import (
	"commerce/internal/models"
)

// ListingRepository defines the interface for listing data access.
type ListingRepository interface {
	GetActive() ([]models.Listing, error)
	GetClosed() ([]models.Listing, error)
	GetByID(id string) (*models.Listing, error)
	GetByCategory(categoryID *string) ([]models.Listing, error)
	Create(listing *models.Listing) error
	// Close marks the listing inactive. Closing an already-closed listing is
	// a no-op success.
	Close(id string) error
}
