package models

import "time"

// CartEntry is a pending, unpurchased menu selection. Entries are keyed by the
// owner's email so guests keep their cart across sessions on the same account.
type CartEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"index;not null" json:"email"`
	MenuItemID uint      `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"` // price snapshot at add time
	AddedAt    time.Time `json:"added_at"`
}
