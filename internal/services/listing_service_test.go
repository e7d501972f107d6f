package services_test

import (
	"testing"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"
	"commerce/internal/repositories"
	"commerce/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestListingService_CreateListing(t *testing.T) {
	listingRepo := repositories.NewMockListingRepository()
	mockCategories := new(MockCategoryRepository)
	service := services.NewListingService(listingRepo, mockCategories)

	listing := &models.Listing{
		OwnerID:       "alice",
		Title:         "Antique clock",
		StartingPrice: dec("25.00"),
	}
	assert.NoError(t, service.CreateListing(listing))
	assert.NotEmpty(t, listing.ID)
	assert.True(t, listing.IsActive)
	// Missing image falls back to the placeholder.
	assert.Equal(t, services.PlaceholderImageURL, listing.ImageURL)
}

func TestListingService_CreateListing_StartingPriceMustBePositive(t *testing.T) {
	listingRepo := repositories.NewMockListingRepository()
	mockCategories := new(MockCategoryRepository)
	service := services.NewListingService(listingRepo, mockCategories)

	for _, price := range []string{"0.00", "-1.00"} {
		err := service.CreateListing(&models.Listing{
			OwnerID:       "alice",
			Title:         "Worthless",
			StartingPrice: dec(price),
		})
		assert.ErrorIs(t, err, services.ErrStartingPriceNotPositive)
	}
}

func TestListingService_CreateListing_UnknownCategory(t *testing.T) {
	listingRepo := repositories.NewMockListingRepository()
	mockCategories := new(MockCategoryRepository)
	service := services.NewListingService(listingRepo, mockCategories)

	missing := "no-such-category"
	mockCategories.On("GetByID", missing).Return(nil, auctionerrors.ErrCategoryNotFound).Once()

	err := service.CreateListing(&models.Listing{
		OwnerID:       "alice",
		Title:         "Antique clock",
		StartingPrice: dec("25.00"),
		CategoryID:    &missing,
	})
	assert.ErrorIs(t, err, auctionerrors.ErrCategoryNotFound)
}

func TestListingService_CategoryBuckets(t *testing.T) {
	listingRepo := repositories.NewMockListingRepository()
	mockCategories := new(MockCategoryRepository)
	service := services.NewListingService(listingRepo, mockCategories)

	catID := "cat-1"
	mockCategories.On("GetByID", catID).Return(&models.Category{ID: catID, Name: "Clocks"}, nil)

	assert.NoError(t, service.CreateListing(&models.Listing{
		OwnerID: "alice", Title: "Categorized", StartingPrice: dec("5.00"), CategoryID: &catID,
	}))
	assert.NoError(t, service.CreateListing(&models.Listing{
		OwnerID: "alice", Title: "Uncategorized", StartingPrice: dec("5.00"),
	}))

	categorized, err := service.GetListingsByCategory(&catID)
	assert.NoError(t, err)
	assert.Len(t, categorized, 1)
	assert.Equal(t, "Categorized", categorized[0].Title)

	uncategorized, err := service.GetListingsByCategory(nil)
	assert.NoError(t, err)
	assert.Len(t, uncategorized, 1)
	assert.Equal(t, "Uncategorized", uncategorized[0].Title)
}
