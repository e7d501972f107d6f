package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMBidRepository is a GORM implementation of BidRepository.
//
// Append serializes concurrent submissions for the same listing with a
// per-listing mutex and wraps the read-decide-insert sequence in a single
// transaction, so the loser of a race re-reads fresh state and gets a
// fresh rejection instead of inserting a stale bid. The mutex only covers
// one process; on postgres the listing row is additionally locked with
// SELECT ... FOR UPDATE so multiple app instances sharing a database stay
// serialized too. sqlite has no FOR UPDATE and relies on the mutex alone.
type GORMBidRepository struct {
	db    *gorm.DB
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewGORMBidRepository creates a new instance of GORMBidRepository.
func NewGORMBidRepository(db *gorm.DB) *GORMBidRepository {
	return &GORMBidRepository{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *GORMBidRepository) listingLock(listingID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[listingID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[listingID] = lock
	}
	return lock
}

// GetByListing retrieves all bids for a listing ordered by timestamp
// ascending, which is the order the pricing rules require.
func (r *GORMBidRepository) GetByListing(listingID string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.Where("listing_id = ?", listingID).Order("timestamp ASC, created_at ASC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// Append atomically reads the listing and its bids, lets decide accept or
// reject, and inserts the accepted bid.
func (r *GORMBidRepository) Append(listingID string, decide BidDecision) (*models.Bid, error) {
	lock := r.listingLock(listingID)
	lock.Lock()
	defer lock.Unlock()

	var created *models.Bid
	err := r.db.Transaction(func(tx *gorm.DB) error {
		read := tx
		if tx.Dialector.Name() == "postgres" {
			read = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var listing models.Listing
		if err := read.First(&listing, "id = ?", listingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
			}
			return fmt.Errorf("failed to get listing %s: %w", listingID, err)
		}

		var bids []models.Bid
		if err := tx.Where("listing_id = ?", listingID).Order("timestamp ASC, created_at ASC").Find(&bids).Error; err != nil {
			return fmt.Errorf("failed to get bids for listing %s: %w", listingID, err)
		}

		bid, err := decide(&listing, bids)
		if err != nil {
			return err
		}

		if bid.ID == "" {
			bid.ID = uuid.New().String()
		}
		// Server-assigned timestamp, clamped so it never precedes the latest
		// existing bid. Monotonicity keeps the winner tie-break meaningful.
		bid.Timestamp = time.Now().UTC()
		if n := len(bids); n > 0 && bid.Timestamp.Before(bids[n-1].Timestamp) {
			bid.Timestamp = bids[n-1].Timestamp
		}

		if err := tx.Create(bid).Error; err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}
		created = bid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
