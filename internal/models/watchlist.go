package models

import "time"

// WatchlistItem relates a watcher to a listing they track. The composite
// unique index is what ultimately arbitrates duplicate adds, including
// concurrent ones. Rows are hard-deleted on remove so that a later re-add
// does not collide with a tombstone, hence no gorm.Model here.
type WatchlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ListingID string    `json:"listing_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_watchlist_entry"`
	Listing   *Listing  `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	WatcherID string    `json:"watcher_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_watchlist_entry"`
	Watcher   *User     `json:"-" gorm:"foreignKey:WatcherID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
