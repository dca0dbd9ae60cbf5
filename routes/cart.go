package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/developerssaddam/bistro-boss-server/controllers/cart"
)

// SetupCartRoutes registers the "/carts" endpoints. Carts are open: entries
// are keyed by the owner's email supplied by the client.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/carts", cartControllers.GetCarts(db))
	r.POST("/carts", cartControllers.AddCartEntry(db))
	r.DELETE("/carts", cartControllers.DeleteCartEntry(db))
}
