package menuControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/developerssaddam/bistro-boss-server/models"
)

type UpdateMenuItemInput struct {
	Name     *string  `json:"name"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// PATCH /food/menu/item/:id
//
// Partial update: only the fields present in the body are touched.
func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
			return
		}

		var input UpdateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Recipe != nil {
			updates["recipe"] = *input.Recipe
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}

		if len(updates) == 0 {
			c.JSON(http.StatusOK, gin.H{"matchedCount": 0, "modifiedCount": 0})
			return
		}

		result := db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"matchedCount":  result.RowsAffected,
			"modifiedCount": result.RowsAffected,
		})
	}
}
