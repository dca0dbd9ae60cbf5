package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/developerssaddam/bistro-boss-server/controllers/payment"
	"github.com/developerssaddam/bistro-boss-server/middleware"
)

// SetupPaymentRoutes registers checkout and payment-history endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent())

	r.GET("/payment/history/:email", middleware.ValidateToken, paymentControllers.GetPaymentHistory(db))
	r.POST("/payment/history", middleware.ValidateToken, paymentControllers.RecordPayment(db))
}
