package services

import (
	"fmt"

	"commerce/internal/models"
	"commerce/internal/repositories"
)

// WatchlistService handles per-user listing tracking. There is no ownership
// restriction: users may watch their own listings and closed listings, since
// no other tracking mechanism exists.
type WatchlistService struct {
	watchlistRepo repositories.WatchlistRepository
	listingRepo   repositories.ListingRepository
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(watchlistRepo repositories.WatchlistRepository, listingRepo repositories.ListingRepository) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		listingRepo:   listingRepo,
	}
}

// AddToWatchlist tracks a listing for a user. Adding an already-tracked
// listing is a success no-op.
func (s *WatchlistService) AddToWatchlist(userID, listingID string) error {
	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		return err
	}
	if err := s.watchlistRepo.Add(userID, listingID); err != nil {
		return fmt.Errorf("failed to add listing %s to watchlist: %w", listingID, err)
	}
	return nil
}

// RemoveFromWatchlist stops tracking a listing. Removing a listing that was
// never tracked is a success no-op.
func (s *WatchlistService) RemoveFromWatchlist(userID, listingID string) error {
	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		return err
	}
	if err := s.watchlistRepo.Remove(userID, listingID); err != nil {
		return fmt.Errorf("failed to remove listing %s from watchlist: %w", listingID, err)
	}
	return nil
}

// IsWatchlisted reports whether the user tracks the listing.
func (s *WatchlistService) IsWatchlisted(userID, listingID string) (bool, error) {
	return s.watchlistRepo.Contains(userID, listingID)
}

// WatchlistFor returns the user's tracked listings, most recently added first.
func (s *WatchlistService) WatchlistFor(userID string) ([]models.Listing, error) {
	return s.watchlistRepo.ListingsFor(userID)
}
