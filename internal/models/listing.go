package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Listing is an auctionable item. The owner never changes after creation, and
// the only direct mutation a listing ever sees is the one-way Open -> Closed
// transition; everything price-related is derived from its bids.
type Listing struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID       string          `json:"owner_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Owner         *User           `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CategoryID    *string         `json:"category_id" gorm:"type:varchar(36)"`
	Category      *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Title         string          `json:"title" validate:"required,min=1,max=150"`
	Description   string          `json:"description" gorm:"type:text" validate:"max=2000"`
	StartingPrice decimal.Decimal `json:"starting_price" gorm:"type:decimal(9,2);not null"`
	ImageURL      string          `json:"image_url" validate:"omitempty,url"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:true"` // true = Open, false = Closed
	gorm.Model                    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
