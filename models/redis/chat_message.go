package redis

import "time"

// ChatMessage is a single in-room chat message. Chat is relayed only,
// nothing is persisted to PostgreSQL.
type ChatMessage struct {
	RoomID    string    `json:"room_id"`
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
