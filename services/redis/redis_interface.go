package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_utils "Tycoon/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations. It is the secondary copy of the
// live game state; Postgres stays authoritative.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveGameState stores a room's live game state in Redis
// Key format: "room:{id}:state"
// TTL: 24 hours
func (rc *RedisClient) SaveGameState(roomID string, state interface{}) error {
	key := redis_utils.FormatGameStateKey(roomID)
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling game state: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// GetGameState retrieves a room's live game state from Redis into dest.
// Returns redis.Nil wrapped when the room has no snapshot.
func (rc *RedisClient) GetGameState(roomID string, dest interface{}) error {
	key := redis_utils.FormatGameStateKey(roomID)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("error getting game state: %v", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("error unmarshaling game state: %v", err)
	}
	return nil
}

// DeleteGameState removes a room's game state and chat history from Redis
func (rc *RedisClient) DeleteGameState(roomID string) error {
	pipe := rc.client.Pipeline()
	pipe.Del(rc.ctx, redis_utils.FormatGameStateKey(roomID))
	pipe.Del(rc.ctx, redis_utils.FormatChatHistoryKey(roomID))
	_, err := pipe.Exec(rc.ctx)
	if err != nil {
		return fmt.Errorf("error deleting game state: %v", err)
	}
	return nil
}
