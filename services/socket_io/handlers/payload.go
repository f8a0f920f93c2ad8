package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Socket payloads arrive as loosely typed JSON objects. These helpers
// pull the expected fields out before anything reaches the game core.

func parsePayload(client *socket.Socket, args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		client.Emit("error", gin.H{"error": "Missing event payload"})
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		client.Emit("error", gin.H{"error": "Malformed event payload"})
		return nil, false
	}
	return payload, true
}

func getString(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func getInt(payload map[string]interface{}, key string) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func getBool(payload map[string]interface{}, key string) bool {
	if v, ok := payload[key].(bool); ok {
		return v
	}
	return false
}

func getStringSlice(payload map[string]interface{}, key string) []string {
	raw, ok := payload[key].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
