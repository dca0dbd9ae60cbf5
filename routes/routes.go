package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupUserRoutes(r, db)
	SetupMenuRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupPaymentRoutes(r, db)
	SetupAdminRoutes(r, db)
}
