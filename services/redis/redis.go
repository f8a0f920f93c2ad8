package redis

import (
	"encoding/json"
	"fmt"
	"time"

	redis_models "Tycoon/models/redis"
	redis_utils "Tycoon/services/redis/utils"
)

const chatHistoryLimit = 100

// SaveChatMessage appends one message to the room's chat history,
// trimming to the newest entries.
// Key format: "room:{id}:chat"
// TTL: 24 hours
func (rc *RedisClient) SaveChatMessage(msg *redis_models.ChatMessage) error {
	key := redis_utils.FormatChatHistoryKey(msg.RoomID)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %v", err)
	}

	pipe := rc.client.Pipeline()
	pipe.RPush(rc.ctx, key, data)
	pipe.LTrim(rc.ctx, key, -chatHistoryLimit, -1)
	pipe.Expire(rc.ctx, key, 24*time.Hour)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("error saving chat message: %v", err)
	}
	return nil
}

// GetChatHistory returns the room's retained chat messages, oldest first.
func (rc *RedisClient) GetChatHistory(roomID string) ([]*redis_models.ChatMessage, error) {
	key := redis_utils.FormatChatHistoryKey(roomID)
	raw, err := rc.client.LRange(rc.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting chat history: %v", err)
	}

	messages := make([]*redis_models.ChatMessage, 0, len(raw))
	for _, entry := range raw {
		var msg redis_models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %v", err)
		}
		messages = append(messages, &msg)
	}
	return messages, nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
