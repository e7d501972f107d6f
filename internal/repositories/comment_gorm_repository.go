package repositories

import (
	"fmt"
	"time"

	"commerce/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create creates a new comment in the database.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now().UTC()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByListing retrieves a listing's comments ordered oldest first, the order
// the listing page shows them in.
func (r *GORMCommentRepository) GetByListing(listingID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("listing_id = ?", listingID).Order("timestamp ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get comments for listing %s: %w", listingID, err)
	}
	return comments, nil
}
