package controllers

import (
	"net/http"

	models "Tycoon/models/postgres"
	"Tycoon/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Returns a room's transaction history
// @Description Ledger entries for the room, newest first
// @Tags transactions
// @Produce json
// @Param roomId path string true "Id of the room"
// @Success 200 {array} object{id=string,type=string,amount=integer}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /transactions/{roomId} [get]
func GetTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("roomId")

		if _, err := utils.CheckRoomExists(db, roomID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}

		var transactions []models.Transaction
		if err := db.Where("room_id = ?", roomID).
			Order("created_at desc").
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading transactions"})
			return
		}

		records := make([]gin.H, len(transactions))
		for i, tx := range transactions {
			records[i] = gin.H{
				"id":          tx.ID,
				"type":        tx.Type,
				"amount":      tx.Amount,
				"fromPlayer":  tx.FromPlayer,
				"toPlayer":    tx.ToPlayer,
				"description": tx.Description,
				"createdAt":   tx.CreatedAt,
			}
		}
		c.JSON(http.StatusOK, records)
	}
}
