package models

import "gorm.io/gorm"

// User represents a registered member of the marketplace.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Timezone   string `json:"timezone" gorm:"type:varchar(64)"`            // IANA name, used only for display
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
