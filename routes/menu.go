package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	menuControllers "github.com/developerssaddam/bistro-boss-server/controllers/menu"
	"github.com/developerssaddam/bistro-boss-server/middleware"
)

// SetupMenuRoutes registers the "/food/menu*" endpoints. Reads are open;
// writes are admin-only.
func SetupMenuRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/food/menu", menuControllers.GetMenu(db))
	r.GET("/food/menu/item/:id", menuControllers.GetMenuItemByID(db))
	r.GET("/food/menu/reviews", menuControllers.GetReviews(db))

	r.POST("/food/menu", middleware.ValidateToken, middleware.RequireAdmin(db), menuControllers.CreateMenuItem(db))
	r.PATCH("/food/menu/item/:id", middleware.ValidateToken, middleware.RequireAdmin(db), menuControllers.UpdateMenuItem(db))
	r.DELETE("/food/menu/:id", middleware.ValidateToken, middleware.RequireAdmin(db), menuControllers.DeleteMenuItem(db))
}
