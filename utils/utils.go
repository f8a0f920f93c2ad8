package utils

import (
	"fmt"

	models "Tycoon/models/postgres"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// ErrorHandler handles global errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// Function to check if a room exists
func CheckRoomExists(db *gorm.DB, roomID string) (*models.GameRoom, error) {
	var room models.GameRoom
	result := db.Where("id = ?", roomID).First(&room)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("room not found")
		}
		return nil, result.Error
	}

	return &room, nil
}

func IsPlayerInRoom(db *gorm.DB, roomID string, playerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Player{}).
		Where("room_id = ? AND id = ?", roomID, playerID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
