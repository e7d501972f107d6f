package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Business rule errors
var (
	ErrAuctionClosed      = errors.New("auction has ended")
	ErrSelfBidNotAllowed  = errors.New("owners may not bid on their own listings")
	ErrNotListingOwner    = errors.New("only the listing owner may close it")
	ErrCommentBodyEmpty   = errors.New("comment body cannot be blank")
	ErrCommentBodyTooLong = errors.New("comment body exceeds the maximum length")
	ErrUnknownTimezone    = errors.New("unknown timezone")
)

// BidTooLowError rejects a bid below the minimum acceptable amount and
// carries the minimum so the caller can tell the bidder what to offer.
type BidTooLowError struct {
	Required decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: you must bid at least %s", e.Required.StringFixed(2))
}

// IsNotFound reports whether err is any of the missing-entity errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrListingNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}
