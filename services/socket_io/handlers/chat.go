package handlers

import (
	"log"
	"time"

	redis_models "Tycoon/models/redis"
	"Tycoon/services/game"
	"Tycoon/services/redis"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSendChatMessage relays the message through the game core (which
// broadcasts it to the room) and keeps a short history in Redis.
func HandleSendChatMessage(coordinator *game.Coordinator, client *socket.Socket,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		roomID := getString(payload, "roomId")
		playerID := getString(payload, "playerId")
		message := getString(payload, "message")

		coordinator.Dispatch(game.SendChat{
			ActionBase: game.ActionBase{RoomID: roomID, PlayerID: playerID},
			Message:    message,
		})

		if redisClient != nil && message != "" {
			msg := &redis_models.ChatMessage{
				RoomID:    roomID,
				PlayerID:  playerID,
				Message:   message,
				Timestamp: time.Now(),
			}
			if err := redisClient.SaveChatMessage(msg); err != nil {
				log.Printf("[CHAT-ERROR] saving message for room %s: %v", roomID, err)
			}
		}
	}
}
