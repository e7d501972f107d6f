// Package pricing derives price facts from a listing's immutable bid history.
// Every function here is a pure function of (starting price, ordered bids);
// no current price is ever stored, it is always recomputed from the bids.
package pricing

import (
	"commerce/internal/models"

	"github.com/shopspring/decimal"
)

const monetaryPrecision int32 = 2

// round normalizes an amount to 2 decimal places. decimal.Round rounds half
// away from zero, i.e. round-half-up for the positive amounts used here.
func round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(monetaryPrecision)
}

// BidCount returns the number of bids placed on the listing.
func BidCount(bids []models.Bid) int {
	return len(bids)
}

// CurrentPrice returns the starting price when no bids exist, otherwise the
// highest bid amount.
func CurrentPrice(startingPrice decimal.Decimal, bids []models.Bid) decimal.Decimal {
	if len(bids) == 0 {
		return round(startingPrice)
	}
	high := bids[0].Amount
	for _, bid := range bids[1:] {
		if bid.Amount.GreaterThan(high) {
			high = bid.Amount
		}
	}
	return round(high)
}

// MinimumNextBid returns the smallest acceptable next bid: the starting price
// while the listing has no bids (the first bid must meet it), and the current
// price plus the configured increment afterwards.
func MinimumNextBid(startingPrice decimal.Decimal, bids []models.Bid, increment decimal.Decimal) decimal.Decimal {
	if len(bids) == 0 {
		return round(startingPrice)
	}
	return round(CurrentPrice(startingPrice, bids).Add(increment))
}

// Winner returns the bidder holding the current price, or ok=false when the
// listing has no bids. Bids must be ordered by timestamp ascending; if several
// bids share the maximum amount the earliest one wins, so the scan only
// replaces the leader on a strictly greater amount.
func Winner(bids []models.Bid) (bidderID string, ok bool) {
	if len(bids) == 0 {
		return "", false
	}
	leader := bids[0]
	for _, bid := range bids[1:] {
		if bid.Amount.GreaterThan(leader.Amount) {
			leader = bid
		}
	}
	return leader.BidderID, true
}
