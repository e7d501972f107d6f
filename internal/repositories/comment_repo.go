package repositories

import "commerce/internal/models"

// CommentRepository defines the interface for comment data access. Comments
// are append-only.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByListing(listingID string) ([]models.Comment, error)
}
