package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/developerssaddam/bistro-boss-server/models"
)

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GET /admin-stats
func GetAdminStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalMenu, totalOrders int64
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		if err := db.Model(&models.MenuItem{}).Count(&totalMenu).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count menu items"})
			return
		}
		if err := db.Model(&models.Payment{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count payments"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalUsers":   totalUsers,
			"totalMenu":    totalMenu,
			"totalOrders":  totalOrders,
			"totalRevenue": totalRevenue,
		})
	}
}

// GET /order/stats
//
// Expands each payment's purchased items, joins against the menu catalog and
// groups by category. Revenue comes from the current catalog price, not the
// price paid at purchase time, so it drifts when prices change after a sale.
func GetOrderStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats []CategoryStat
		if err := db.Table("payment_items").
			Select("menu_items.category AS category, COUNT(payment_items.id) AS quantity, SUM(menu_items.price) AS revenue").
			Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id").
			Group("menu_items.category").
			Scan(&stats).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate order stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
