package services

import (
	"encoding/json"
	"fmt"
	"log"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"
	"commerce/internal/pricing"
	"commerce/internal/repositories"

	"github.com/shopspring/decimal"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// PriceFacts bundles the derived price state of a listing for a single read.
type PriceFacts struct {
	CurrentPrice   decimal.Decimal `json:"current_price"`
	MinimumNextBid decimal.Decimal `json:"minimum_next_bid"`
	BidCount       int             `json:"bid_count"`
	WinnerID       *string         `json:"winner_id,omitempty"`
}

// AuctionService handles bidding and the listing lifecycle. All price state
// is derived on read from the bid history; nothing derived is ever stored.
type AuctionService struct {
	listingRepo repositories.ListingRepository
	bidRepo     repositories.BidRepository
	mqClient    EventPublisher
	increment   decimal.Decimal
}

// NewAuctionService creates a new AuctionService. increment is the configured
// amount a bid must exceed the current price by once bidding has started.
func NewAuctionService(listingRepo repositories.ListingRepository, bidRepo repositories.BidRepository, mqClient EventPublisher, increment decimal.Decimal) *AuctionService {
	return &AuctionService{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		mqClient:    mqClient,
		increment:   increment,
	}
}

// validateBid is the bid decision function. Checks run in order and the first
// failure wins: lifecycle, ownership, then amount.
func (s *AuctionService) validateBid(listing *models.Listing, bids []models.Bid, bidderID string, amount decimal.Decimal) error {
	if !listing.IsActive {
		return auctionerrors.ErrAuctionClosed
	}
	if listing.OwnerID == bidderID {
		return auctionerrors.ErrSelfBidNotAllowed
	}
	minimum := pricing.MinimumNextBid(listing.StartingPrice, bids, s.increment)
	if amount.LessThan(minimum) {
		return &auctionerrors.BidTooLowError{Required: minimum}
	}
	return nil
}

// PlaceBid validates and records a bid. Validation and insertion run as one
// atomic unit in the repository, so two concurrent bids for the same listing
// are linearized and the loser is re-validated against the winner's bid.
func (s *AuctionService) PlaceBid(listingID, bidderID string, amount decimal.Decimal) (*models.Bid, error) {
	bid, err := s.bidRepo.Append(listingID, func(listing *models.Listing, bids []models.Bid) (*models.Bid, error) {
		if err := s.validateBid(listing, bids, bidderID, amount); err != nil {
			return nil, err
		}
		return &models.Bid{
			ListingID: listing.ID,
			BidderID:  bidderID,
			Amount:    amount.Round(2),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

// CloseListing ends the auction. Only the owner may close; closing an
// already-closed listing is a success no-op.
func (s *AuctionService) CloseListing(listingID, requestingUserID string) error {
	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		return err
	}
	if listing.OwnerID != requestingUserID {
		return auctionerrors.ErrNotListingOwner
	}
	if !listing.IsActive {
		return nil
	}

	if err := s.listingRepo.Close(listingID); err != nil {
		return fmt.Errorf("failed to close listing %s: %w", listingID, err)
	}

	s.publishListingClosed(listing)
	return nil
}

// publishListingClosed emits a listing.closed event with the final outcome.
// Publishing is best-effort: a broker failure never rolls back the close.
func (s *AuctionService) publishListingClosed(listing *models.Listing) {
	if s.mqClient == nil {
		log.Println("Event publisher is not initialized. Skipping listing.closed publication.")
		return
	}

	event := map[string]interface{}{
		"listingID":  listing.ID,
		"ownerID":    listing.OwnerID,
		"title":      listing.Title,
		"finalPrice": nil,
		"winnerID":   nil,
	}
	if facts, err := s.GetPriceFacts(listing.ID); err != nil {
		log.Printf("Warning: failed to derive final price for listing %s: %v", listing.ID, err)
	} else {
		event["finalPrice"] = facts.CurrentPrice.StringFixed(2)
		event["winnerID"] = facts.WinnerID
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal listing.closed event: %v", err)
		return
	}
	if err := s.mqClient.Publish("auction", "listing.closed", body); err != nil {
		log.Printf("Warning: failed to publish listing.closed event for listing %s: %v", listing.ID, err)
	}
}

// GetPriceFacts derives the full price state of a listing.
func (s *AuctionService) GetPriceFacts(listingID string) (*PriceFacts, error) {
	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		return nil, err
	}
	bids, err := s.bidRepo.GetByListing(listingID)
	if err != nil {
		return nil, err
	}

	facts := &PriceFacts{
		CurrentPrice:   pricing.CurrentPrice(listing.StartingPrice, bids),
		MinimumNextBid: pricing.MinimumNextBid(listing.StartingPrice, bids, s.increment),
		BidCount:       pricing.BidCount(bids),
	}
	if winnerID, ok := pricing.Winner(bids); ok {
		facts.WinnerID = &winnerID
	}
	return facts, nil
}

// CurrentPrice returns the listing's current price.
func (s *AuctionService) CurrentPrice(listingID string) (decimal.Decimal, error) {
	facts, err := s.GetPriceFacts(listingID)
	if err != nil {
		return decimal.Zero, err
	}
	return facts.CurrentPrice, nil
}

// MinimumNextBid returns the smallest acceptable next bid for the listing.
func (s *AuctionService) MinimumNextBid(listingID string) (decimal.Decimal, error) {
	facts, err := s.GetPriceFacts(listingID)
	if err != nil {
		return decimal.Zero, err
	}
	return facts.MinimumNextBid, nil
}

// Winner returns the current winning bidder, or nil when there are no bids.
func (s *AuctionService) Winner(listingID string) (*string, error) {
	facts, err := s.GetPriceFacts(listingID)
	if err != nil {
		return nil, err
	}
	return facts.WinnerID, nil
}

// BidCount returns the number of bids on the listing.
func (s *AuctionService) BidCount(listingID string) (int, error) {
	facts, err := s.GetPriceFacts(listingID)
	if err != nil {
		return 0, err
	}
	return facts.BidCount, nil
}

// GetBidsForListing returns the listing's bid history, oldest first.
func (s *AuctionService) GetBidsForListing(listingID string) ([]models.Bid, error) {
	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		return nil, err
	}
	bids, err := s.bidRepo.GetByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}
