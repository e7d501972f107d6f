package services

import (
	"fmt"

	"commerce/internal/models"
	"commerce/internal/repositories"

	"github.com/shopspring/decimal"
)

// PlaceholderImageURL is substituted when a listing has no image of its own.
const PlaceholderImageURL = "https://upload.wikimedia.org/wikipedia/commons/6/65/No-Image-Placeholder.svg"

// ErrStartingPriceNotPositive rejects listings whose starting price is not
// strictly greater than zero.
var ErrStartingPriceNotPositive = fmt.Errorf("starting price must be greater than 0.00")

// ListingService handles creation and browsing of listings.
type ListingService struct {
	listingRepo  repositories.ListingRepository
	categoryRepo repositories.CategoryRepository
}

// NewListingService creates a new ListingService.
func NewListingService(listingRepo repositories.ListingRepository, categoryRepo repositories.CategoryRepository) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateListing creates a new open listing owned by ownerID.
func (s *ListingService) CreateListing(listing *models.Listing) error {
	if !listing.StartingPrice.GreaterThan(decimal.Zero) {
		return ErrStartingPriceNotPositive
	}
	if listing.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*listing.CategoryID); err != nil {
			return err
		}
	}
	listing.StartingPrice = listing.StartingPrice.Round(2)
	listing.IsActive = true
	if listing.ImageURL == "" {
		listing.ImageURL = PlaceholderImageURL
	}
	if err := s.listingRepo.Create(listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetActiveListings retrieves all open listings.
func (s *ListingService) GetActiveListings() ([]models.Listing, error) {
	return s.listingRepo.GetActive()
}

// GetClosedListings retrieves all closed listings.
func (s *ListingService) GetClosedListings() ([]models.Listing, error) {
	return s.listingRepo.GetClosed()
}

// GetListingByID retrieves a single listing by its ID.
func (s *ListingService) GetListingByID(id string) (*models.Listing, error) {
	return s.listingRepo.GetByID(id)
}

// GetListingsByCategory retrieves the open listings in a category. A nil
// categoryID selects the uncategorized bucket; a non-nil one must exist.
func (s *ListingService) GetListingsByCategory(categoryID *string) ([]models.Listing, error) {
	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(*categoryID); err != nil {
			return nil, err
		}
	}
	return s.listingRepo.GetByCategory(categoryID)
}
