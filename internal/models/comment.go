package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is an immutable remark on a listing. No threading.
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ListingID   string    `json:"listing_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Listing     *Listing  `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	CommenterID string    `json:"commenter_id" gorm:"type:varchar(36);not null" validate:"required"`
	Commenter   *User     `json:"-" gorm:"foreignKey:CommenterID;constraint:OnDelete:CASCADE"`
	Body        string    `json:"body" gorm:"type:text" validate:"required,min=1,max=500"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
