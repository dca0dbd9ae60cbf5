package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/developerssaddam/bistro-boss-server/controllers/admin"
	menuControllers "github.com/developerssaddam/bistro-boss-server/controllers/menu"
	"github.com/developerssaddam/bistro-boss-server/middleware"
)

// SetupAdminRoutes registers the admin dashboard endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/admin-stats", middleware.ValidateToken, middleware.RequireAdmin(db), adminControllers.GetAdminStats(db))
	r.GET("/order/stats", middleware.ValidateToken, middleware.RequireAdmin(db), adminControllers.GetOrderStats(db))
	r.GET("/admin/menu/export", middleware.ValidateToken, middleware.RequireAdmin(db), menuControllers.ExportMenuToExcel(db))
}
