package paymentControllers

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/developerssaddam/bistro-boss-server/models"
)

// StartCartCleanup periodically retries cart cleanup for payments whose
// second checkout phase never completed. Run it from main in a goroutine.
func StartCartCleanup(db *gorm.DB, interval time.Duration) {
	for {
		time.Sleep(interval)
		swept, err := SweepPendingCartCleanups(db)
		if err != nil {
			log.Printf("cart cleanup sweep failed: %v", err)
			continue
		}
		if swept > 0 {
			log.Printf("cart cleanup: settled %d pending payment(s)", swept)
		}
	}
}

// SweepPendingCartCleanups finds payments with cart_cleared=false and re-runs
// their cart deletion. Returns how many payments were settled.
func SweepPendingCartCleanups(db *gorm.DB) (int, error) {
	var pending []models.Payment
	if err := db.Preload("CartRefs").Where("cart_cleared = ?", false).Find(&pending).Error; err != nil {
		return 0, err
	}

	swept := 0
	for i := range pending {
		if err := clearCartEntries(db, &pending[i]); err != nil {
			log.Printf("cart cleanup for payment %d failed: %v", pending[i].ID, err)
			continue
		}
		swept++
	}
	return swept, nil
}
