package repositories

import (
	"fmt"
	"sort"
	"sync"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"

	"github.com/google/uuid"
)

// MockListingRepository is an in-memory implementation of ListingRepository.
type MockListingRepository struct {
	listings map[string]models.Listing
	mu       sync.RWMutex
}

// NewMockListingRepository creates a new instance of MockListingRepository.
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{
		listings: make(map[string]models.Listing),
	}
}

func (r *MockListingRepository) filtered(active bool) []models.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]models.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if l.IsActive == active {
			listings = append(listings, l)
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings
}

// GetActive returns all open listings.
func (r *MockListingRepository) GetActive() ([]models.Listing, error) {
	return r.filtered(true), nil
}

// GetClosed returns all closed listings.
func (r *MockListingRepository) GetClosed() ([]models.Listing, error) {
	return r.filtered(false), nil
}

// GetByID returns a listing by its ID.
func (r *MockListingRepository) GetByID(id string) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id, auctionerrors.ErrListingNotFound)
	}
	return &listing, nil
}

// GetByCategory returns the open listings in a category; nil selects the
// uncategorized bucket.
func (r *MockListingRepository) GetByCategory(categoryID *string) ([]models.Listing, error) {
	active := r.filtered(true)
	listings := make([]models.Listing, 0, len(active))
	for _, l := range active {
		switch {
		case categoryID == nil && l.CategoryID == nil:
			listings = append(listings, l)
		case categoryID != nil && l.CategoryID != nil && *l.CategoryID == *categoryID:
			listings = append(listings, l)
		}
	}
	return listings, nil
}

// Create stores a new listing.
func (r *MockListingRepository) Create(listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	r.listings[listing.ID] = *listing
	return nil
}

// Close marks the listing inactive.
func (r *MockListingRepository) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing %s: %w", id, auctionerrors.ErrListingNotFound)
	}
	listing.IsActive = false
	r.listings[id] = listing
	return nil
}
