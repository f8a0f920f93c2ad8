package controllers

import (
	"log"
	"math/rand"
	"net/http"

	game_constants "Tycoon/constants/game"
	models "Tycoon/models/postgres"
	"Tycoon/services/board"
	"Tycoon/services/game"
	"Tycoon/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// @Summary Lists all existing game rooms
// @Description Returns every room with a player summary
// @Tags rooms
// @Produce json
// @Success 200 {array} object{id=string,name=string,status=string,players=integer}
// @Failure 500 {object} object{error=string}
// @Router /rooms [get]
func GetAllRooms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gameRooms []models.GameRoom
		if err := db.Preload("Players").Order("created_at desc").Find(&gameRooms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rooms"})
			return
		}

		rooms := make([]gin.H, len(gameRooms))
		for i, room := range gameRooms {
			players := make([]gin.H, len(room.Players))
			for j, p := range room.Players {
				players[j] = gin.H{
					"id":      p.ID,
					"name":    p.Name,
					"color":   p.Color,
					"isReady": p.IsReady,
				}
			}
			rooms[i] = gin.H{
				"id":         room.ID,
				"name":       room.Name,
				"boardSize":  room.BoardSize,
				"maxPlayers": room.MaxPlayers,
				"status":     room.Status,
				"hostId":     room.HostID,
				"players":    players,
				"createdAt":  room.CreatedAt,
			}
		}
		c.JSON(http.StatusOK, rooms)
	}
}

type createRoomRequest struct {
	Name       string         `json:"name" binding:"required"`
	BoardSize  int            `json:"boardSize"`
	MaxPlayers int            `json:"maxPlayers"`
	HostID     string         `json:"hostId" binding:"required"`
	Settings   datatypes.JSON `json:"settings"`
}

// @Summary Creates a new game room
// @Description Creates a WAITING room; the host still joins through /rooms/join
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} object{message=string,roomId=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms [post]
func CreateRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and hostId are required"})
			return
		}
		if req.BoardSize == 0 {
			req.BoardSize = 40
		}
		if req.MaxPlayers == 0 {
			req.MaxPlayers = 6
		}
		if req.BoardSize < 8 || req.BoardSize%4 != 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Board size must be a multiple of 4, at least 8"})
			return
		}
		if req.MaxPlayers < 2 || req.MaxPlayers > 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Max players must be between 2 and 8"})
			return
		}

		// *There is a function on the GameRoom model "BeforeCreate" for the id generation
		newRoom := models.GameRoom{
			Name:       req.Name,
			BoardSize:  req.BoardSize,
			MaxPlayers: req.MaxPlayers,
			Status:     models.RoomWaiting,
			HostID:     req.HostID,
			Settings:   req.Settings,
		}
		if err := db.Create(&newRoom).Error; err != nil {
			log.Println("Failed to create room:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"roomId": newRoom.ID, "message": "Room created successfully"})
	}
}

type joinRoomRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
}

// @Summary Inserts a player into a room
// @Description Player ids are client-generated; the room must be WAITING and not full
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms/join [post]
func JoinRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req joinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId, playerId and name are required"})
			return
		}

		room, err := utils.CheckRoomExists(db, req.RoomID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		if room.Status != models.RoomWaiting {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game has already started"})
			return
		}

		var players []models.Player
		if err := db.Where("room_id = ?", req.RoomID).Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading room players"})
			return
		}
		if len(players) >= room.MaxPlayers {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room is full"})
			return
		}
		for _, p := range players {
			if p.ID == req.PlayerID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Player already in room"})
				return
			}
			if req.Color != "" && p.Color == req.Color {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Color already taken"})
				return
			}
		}

		player := models.Player{
			ID:     req.PlayerID,
			RoomID: req.RoomID,
			Name:   req.Name,
			Color:  req.Color,
			Cash:   game_constants.StartingCash,
		}
		if err := db.Create(&player).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding player to room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Joined room successfully"})
	}
}

type startRoomRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
}

// @Summary Starts the game
// @Description Host-only; needs at least 2 ready players. Generates the board and assigns random turn order
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms/start [post]
func StartRoom(db *gorm.DB, coordinator *game.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId and playerId are required"})
			return
		}

		room, err := utils.CheckRoomExists(db, req.RoomID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		if room.HostID != req.PlayerID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only the host can start the game"})
			return
		}
		if room.Status != models.RoomWaiting {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game has already started"})
			return
		}

		var players []models.Player
		if err := db.Where("room_id = ?", req.RoomID).Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading room players"})
			return
		}
		if len(players) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least 2 players are needed to start"})
			return
		}
		for _, p := range players {
			if !p.IsReady {
				c.JSON(http.StatusBadRequest, gin.H{"error": "All players must be ready to start"})
				return
			}
		}

		// random turn order
		order := rand.Perm(len(players))
		for i := range players {
			if err := db.Model(&models.Player{}).
				Where("id = ?", players[i].ID).
				Update("turn_order", order[i]).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error assigning turn order"})
				return
			}
		}

		properties := board.Generate(room.ID, room.BoardSize)
		if err := db.Create(&properties).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating board"})
			return
		}

		if err := db.Model(&models.GameRoom{}).
			Where("id = ?", room.ID).
			Update("status", models.RoomPlaying).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error starting game"})
			return
		}

		// reload the live session so the fresh board is broadcast
		coordinator.Dispatch(game.RefreshRoom{
			ActionBase: game.ActionBase{RoomID: room.ID, PlayerID: req.PlayerID},
		})

		log.Printf("[START] room %s started with %d players", room.ID, len(players))
		c.JSON(http.StatusOK, gin.H{"message": "Game started"})
	}
}
