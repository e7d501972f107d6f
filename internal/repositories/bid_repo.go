package repositories

import (
	"commerce/internal/models"
)

// BidDecision inspects a listing and its full bid history (ordered by
// timestamp ascending) and either returns the bid to append or a business
// error. Implementations of BidRepository.Append must invoke it with the
// listing state pinned, so that a concurrent submission cannot slip a bid in
// between the read and the insert.
type BidDecision func(listing *models.Listing, bids []models.Bid) (*models.Bid, error)

// BidRepository defines the interface for bid data access. Bids are
// append-only; there is deliberately no update or delete.
type BidRepository interface {
	GetByListing(listingID string) ([]models.Bid, error)
	// Append atomically runs "read listing and bids -> decide -> insert".
	// The returned bid carries the server-assigned ID and timestamp; the
	// timestamp never precedes the latest existing bid's timestamp.
	Append(listingID string, decide BidDecision) (*models.Bid, error)
}
