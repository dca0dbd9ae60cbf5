package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/developerssaddam/bistro-boss-server/models"
)

type RecordPaymentInput struct {
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transaction_id"`
	MenuItemIDs   []uint  `json:"menu_item_ids" binding:"required,min=1"`
	CartIDs       []uint  `json:"cart_ids"`
}

// GET /payment/history/:email
func GetPaymentHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var payments []models.Payment
		if err := db.Preload("Items").Preload("CartRefs").
			Where("email = ?", email).
			Order("created_at desc").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment history"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}

// POST /payment/history
//
// Two-phase checkout. Phase one commits the payment with its item and cart
// references in a single transaction. Phase two deletes the referenced cart
// entries and flips CartCleared. When phase two fails the payment stays
// recorded with CartCleared=false and the sweeper retries it later.
func RecordPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RecordPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.TransactionID == "" {
			input.TransactionID = uuid.NewString()
		}

		payment := models.Payment{
			Email:         input.Email,
			Amount:        input.Amount,
			TransactionID: input.TransactionID,
		}
		for _, menuItemID := range input.MenuItemIDs {
			payment.Items = append(payment.Items, models.PaymentItem{MenuItemID: menuItemID})
		}
		for _, cartID := range input.CartIDs {
			payment.CartRefs = append(payment.CartRefs, models.PaymentCartRef{CartEntryID: cartID})
		}

		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}

		if err := clearCartEntries(db, &payment); err != nil {
			// Payment is committed; cleanup is now the sweeper's problem.
			log.Printf("cart cleanup for payment %d failed: %v", payment.ID, err)
			c.JSON(http.StatusCreated, gin.H{"insertedId": payment.ID, "cartCleared": false})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": payment.ID, "cartCleared": true})
	}
}

// clearCartEntries runs phase two for one payment. Deleting by id list is
// idempotent, so retries are safe.
func clearCartEntries(db *gorm.DB, payment *models.Payment) error {
	ids := make([]uint, 0, len(payment.CartRefs))
	for _, ref := range payment.CartRefs {
		ids = append(ids, ref.CartEntryID)
	}

	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Delete(&models.CartEntry{}).Error; err != nil {
			return err
		}
	}

	return db.Model(&models.Payment{}).Where("id = ?", payment.ID).Update("cart_cleared", true).Error
}
