package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bid is an immutable, append-only record of an offer on a listing.
// Timestamp is assigned by the server at acceptance and is monotonically
// non-decreasing per listing, which makes the earliest-bid-wins tie-break
// for equal amounts deterministic.
type Bid struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ListingID  string          `json:"listing_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Listing    *Listing        `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	BidderID   string          `json:"bidder_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Bidder     *User           `json:"-" gorm:"foreignKey:BidderID;constraint:OnDelete:CASCADE"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(9,2);not null"`
	Timestamp  time.Time       `json:"timestamp" gorm:"not null;index"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
