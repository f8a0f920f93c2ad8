package routes

import (
	"Tycoon/controllers"
	"Tycoon/services/game"
	utils "Tycoon/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, coordinator *game.Coordinator) {
	// utils global
	router.Use(utils.ErrorHandler())

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/rooms", controllers.GetAllRooms(db))

	api.POST("/rooms", controllers.CreateRoom(db))

	api.POST("/rooms/join", controllers.JoinRoom(db))

	api.POST("/rooms/start", controllers.StartRoom(db, coordinator))

	api.GET("/transactions/:roomId", controllers.GetTransactions(db))
}
