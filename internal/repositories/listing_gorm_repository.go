package repositories

import (
	"errors"
	"fmt"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMListingRepository is a GORM implementation of ListingRepository.
type GORMListingRepository struct {
	db *gorm.DB
}

// NewGORMListingRepository creates a new instance of GORMListingRepository.
func NewGORMListingRepository(db *gorm.DB) *GORMListingRepository {
	return &GORMListingRepository{
		db: db,
	}
}

// GetActive retrieves all open listings, newest first.
func (r *GORMListingRepository) GetActive() ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to get active listings: %w", err)
	}
	return listings, nil
}

// GetClosed retrieves all closed listings, newest first.
func (r *GORMListingRepository) GetClosed() ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Where("is_active = ?", false).Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to get closed listings: %w", err)
	}
	return listings, nil
}

// GetByID retrieves a single listing by its ID.
func (r *GORMListingRepository) GetByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing %s: %w", id, auctionerrors.ErrListingNotFound)
		}
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", id, err)
	}
	return &listing, nil
}

// GetByCategory retrieves the open listings in a category. A nil categoryID
// selects the uncategorized bucket.
func (r *GORMListingRepository) GetByCategory(categoryID *string) ([]models.Listing, error) {
	var listings []models.Listing
	query := r.db.Where("is_active = ?", true).Order("created_at DESC")
	if categoryID == nil {
		query = query.Where("category_id IS NULL")
	} else {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to get listings by category: %w", err)
	}
	return listings, nil
}

// Create creates a new listing in the database.
func (r *GORMListingRepository) Create(listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if err := r.db.Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// Close marks the listing inactive.
func (r *GORMListingRepository) Close(id string) error {
	res := r.db.Model(&models.Listing{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to close listing %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("listing %s: %w", id, auctionerrors.ErrListingNotFound)
	}
	return nil
}
