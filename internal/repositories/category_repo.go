package repositories

import "commerce/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	// Delete removes the category; listings that referenced it keep living
	// with a nulled category reference.
	Delete(id string) error
}
