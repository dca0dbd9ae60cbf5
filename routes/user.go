package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/developerssaddam/bistro-boss-server/controllers/user"
	"github.com/developerssaddam/bistro-boss-server/middleware"
)

// SetupUserRoutes registers the "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// Open
	r.POST("/users/jwt", userControllers.IssueToken())
	r.POST("/users", userControllers.CreateUser(db))

	// Token-protected
	r.GET("/users/admin/:email", middleware.ValidateToken, userControllers.CheckAdmin(db))

	// Admin-only
	r.GET("/users", middleware.ValidateToken, middleware.RequireAdmin(db), userControllers.GetAllUsers(db))
	r.PATCH("/users/admin/:id", middleware.ValidateToken, middleware.RequireAdmin(db), userControllers.PromoteToAdmin(db))
	r.DELETE("/users/:id", middleware.ValidateToken, middleware.RequireAdmin(db), userControllers.DeleteUser(db))
}
