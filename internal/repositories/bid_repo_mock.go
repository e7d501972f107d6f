package repositories

import (
	"sync"
	"time"

	"commerce/internal/models"

	"github.com/google/uuid"
)

// MockBidRepository is an in-memory implementation of BidRepository. It reads
// listing state from a MockListingRepository and serializes Append with a
// single mutex, giving the same linearization guarantee as the GORM
// implementation's per-listing locks.
type MockBidRepository struct {
	listings *MockListingRepository
	bids     map[string][]models.Bid // keyed by listing ID, ordered by timestamp
	mu       sync.Mutex
}

// NewMockBidRepository creates a new instance of MockBidRepository.
func NewMockBidRepository(listings *MockListingRepository) *MockBidRepository {
	return &MockBidRepository{
		listings: listings,
		bids:     make(map[string][]models.Bid),
	}
}

// GetByListing returns all bids for a listing ordered by timestamp ascending.
func (r *MockBidRepository) GetByListing(listingID string) ([]models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := make([]models.Bid, len(r.bids[listingID]))
	copy(bids, r.bids[listingID])
	return bids, nil
}

// Append runs the read-decide-insert sequence under the repository lock.
func (r *MockBidRepository) Append(listingID string, decide BidDecision) (*models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, err := r.listings.GetByID(listingID)
	if err != nil {
		return nil, err
	}

	bids := r.bids[listingID]
	bid, err := decide(listing, bids)
	if err != nil {
		return nil, err
	}

	if bid.ID == "" {
		bid.ID = uuid.New().String()
	}
	bid.Timestamp = time.Now().UTC()
	if n := len(bids); n > 0 && bid.Timestamp.Before(bids[n-1].Timestamp) {
		bid.Timestamp = bids[n-1].Timestamp
	}

	r.bids[listingID] = append(bids, *bid)
	return bid, nil
}
