package repositories_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"commerce/internal/auctionerrors"
	"commerce/internal/database"
	"commerce/internal/models"
	"commerce/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupBidRepo(t *testing.T) (*gorm.DB, *repositories.GORMBidRepository, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect("sqlite", dsn)
	assert.NoError(t, err)

	owner := models.User{ID: uuid.New().String(), Username: "owner", Email: "owner@example.com", Password: "x", Timezone: "UTC"}
	assert.NoError(t, db.Create(&owner).Error)

	listing := models.Listing{
		ID:            uuid.New().String(),
		OwnerID:       owner.ID,
		Title:         "Antique clock",
		StartingPrice: decimal.RequireFromString("10.00"),
		IsActive:      true,
	}
	assert.NoError(t, db.Create(&listing).Error)

	return db, repositories.NewGORMBidRepository(db), listing.ID
}

func TestGORMBidRepository_AppendPinsStateForDecide(t *testing.T) {
	_, repo, listingID := setupBidRepo(t)

	first, err := repo.Append(listingID, func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
		assert.True(t, listing.IsActive)
		assert.Len(t, bids, 0)
		return &models.Bid{ListingID: listingID, BidderID: "alice", Amount: decimal.RequireFromString("10.00")}, nil
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	// The next decide sees the bid that was just inserted.
	_, err = repo.Append(listingID, func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
		assert.Len(t, bids, 1)
		return &models.Bid{ListingID: listingID, BidderID: "bob", Amount: decimal.RequireFromString("10.01")}, nil
	})
	assert.NoError(t, err)

	bids, err := repo.GetByListing(listingID)
	assert.NoError(t, err)
	assert.Len(t, bids, 2)
	// Server-assigned timestamps never run backwards.
	assert.False(t, bids[1].Timestamp.Before(bids[0].Timestamp))
}

func TestGORMBidRepository_AppendSerializesConcurrentSubmissions(t *testing.T) {
	_, repo, listingID := setupBidRepo(t)

	// Every submitter only accepts when the history is still empty; with the
	// read-decide-insert sequence serialized, exactly one can win.
	var wg sync.WaitGroup
	accepted := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(bidder string) {
			defer wg.Done()
			bid, err := repo.Append(listingID, func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
				if len(bids) > 0 {
					return nil, errors.New("too late")
				}
				return &models.Bid{ListingID: listingID, BidderID: bidder, Amount: decimal.RequireFromString("10.00")}, nil
			})
			if err == nil {
				accepted <- bid.BidderID
			}
		}(fmt.Sprintf("bidder-%d", i))
	}
	wg.Wait()
	close(accepted)

	winners := 0
	for range accepted {
		winners++
	}
	assert.Equal(t, 1, winners)

	bids, err := repo.GetByListing(listingID)
	assert.NoError(t, err)
	assert.Len(t, bids, 1)
}

func TestGORMBidRepository_AppendUnknownListing(t *testing.T) {
	_, repo, _ := setupBidRepo(t)

	_, err := repo.Append(uuid.New().String(), func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
		t.Fatal("decide must not run for a missing listing")
		return nil, nil
	})
	assert.ErrorIs(t, err, auctionerrors.ErrListingNotFound)
}

func TestGORMBidRepository_DecideErrorAbortsInsert(t *testing.T) {
	_, repo, listingID := setupBidRepo(t)

	rejection := errors.New("bid rejected")
	_, err := repo.Append(listingID, func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
		return nil, rejection
	})
	assert.ErrorIs(t, err, rejection)

	bids, err := repo.GetByListing(listingID)
	assert.NoError(t, err)
	assert.Len(t, bids, 0)
}
