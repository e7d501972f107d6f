package services_test

import (
	"fmt"
	"strings"
	"testing"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"
	"commerce/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock implementation of repositories.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByListing(listingID string) ([]models.Comment, error) {
	args := m.Called(listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func TestCommentService_PostComment(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockListings := new(MockListingGetter)
	service := services.NewCommentService(mockComments, mockListings)

	mockListings.On("GetByID", "listing-1").Return(ownListing(), nil).Once()
	mockComments.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil).Once()

	comment, err := service.PostComment("listing-1", "bob", "Lovely clock, does it chime?")
	assert.NoError(t, err)
	assert.Equal(t, "bob", comment.CommenterID)
	assert.Equal(t, "listing-1", comment.ListingID)
	mockComments.AssertExpectations(t)
}

func TestCommentService_RejectsEmptyBody(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockListings := new(MockListingGetter)
	service := services.NewCommentService(mockComments, mockListings)

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := service.PostComment("listing-1", "bob", body)
		assert.ErrorIs(t, err, auctionerrors.ErrCommentBodyEmpty)
	}
	mockComments.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCommentService_RejectsOversizedBody(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockListings := new(MockListingGetter)
	service := services.NewCommentService(mockComments, mockListings)

	// 500 characters is the limit; 501 must be rejected before any lookup.
	_, err := service.PostComment("listing-1", "bob", strings.Repeat("a", 501))
	assert.ErrorIs(t, err, auctionerrors.ErrCommentBodyTooLong)
	mockComments.AssertNotCalled(t, "Create", mock.Anything)

	mockListings.On("GetByID", "listing-1").Return(ownListing(), nil).Once()
	mockComments.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil).Once()
	_, err = service.PostComment("listing-1", "bob", strings.Repeat("a", 500))
	assert.NoError(t, err)
}

func TestCommentService_UnknownListing(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockListings := new(MockListingGetter)
	service := services.NewCommentService(mockComments, mockListings)

	notFound := fmt.Errorf("listing missing: %w", auctionerrors.ErrListingNotFound)
	mockListings.On("GetByID", "missing").Return(nil, notFound).Once()

	_, err := service.PostComment("missing", "bob", "hello")
	assert.ErrorIs(t, err, auctionerrors.ErrListingNotFound)
}

func TestCommentService_GetCommentsForListing(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockListings := new(MockListingGetter)
	service := services.NewCommentService(mockComments, mockListings)

	expected := []models.Comment{
		{ID: "c1", Body: "first"},
		{ID: "c2", Body: "second"},
	}
	mockListings.On("GetByID", "listing-1").Return(ownListing(), nil).Once()
	mockComments.On("GetByListing", "listing-1").Return(expected, nil).Once()

	comments, err := service.GetCommentsForListing("listing-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, comments)
	mockComments.AssertExpectations(t)
}
