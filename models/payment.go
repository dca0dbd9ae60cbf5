package models

import "time"

// Payment is immutable once recorded. CartCleared tracks the second phase of
// checkout: the referenced cart entries are deleted after the payment row is
// committed, and a background sweeper retries any payment left with
// CartCleared=false.
type Payment struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Email         string           `gorm:"index;not null" json:"email"`
	Amount        float64          `json:"amount"`
	TransactionID string           `json:"transaction_id"`
	CartCleared   bool             `gorm:"index" json:"cart_cleared"`
	Items         []PaymentItem    `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"items"`
	CartRefs      []PaymentCartRef `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"cart_refs"`
	CreatedAt     time.Time        `json:"created_at"`
}

// PaymentItem is one purchased menu item. One row per item keeps the
// per-category order stats a plain join+group instead of array surgery.
type PaymentItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PaymentID  uint `gorm:"index" json:"payment_id"`
	MenuItemID uint `json:"menu_item_id"`
}

// PaymentCartRef records which cart entries a payment settles, so cleanup can
// be retried idempotently.
type PaymentCartRef struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	PaymentID   uint `gorm:"index" json:"payment_id"`
	CartEntryID uint `json:"cart_entry_id"`
}
