package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/developerssaddam/bistro-boss-server/models"
)

type AddCartInput struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// GET /carts?email=
func GetCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")

		var entries []models.CartEntry
		if err := db.Where("email = ?", email).Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// POST /carts
func AddCartEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		entry := models.CartEntry{
			Email:      input.Email,
			MenuItemID: input.MenuItemID,
			Name:       input.Name,
			Image:      input.Image,
			Price:      input.Price,
			AddedAt:    time.Now(),
		}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": entry.ID})
	}
}

// DELETE /carts?id=
func DeleteCartEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Query("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}

		result := db.Delete(&models.CartEntry{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart entry"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart entry not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": result.RowsAffected})
	}
}
