package game

// Outbound event names. The socket layer maps these 1:1 onto socket.io
// emits; the core never talks to the transport directly.
const (
	EventRoomUpdated     = "room-updated"
	EventError           = "error"
	EventAuctionStarted  = "auction-started"
	EventBidPlaced       = "bid-placed"
	EventAuctionEnded    = "auction-ended"
	EventTradeProposed   = "trade-proposed"
	EventTradeResolved   = "trade-resolved"
	EventTradeCancelled  = "trade-cancelled"
	EventGameEndProposed = "game-end-proposed"
	EventGameEnded       = "game-ended"
	EventChatMessage     = "chat-message"
)

// Broadcaster is the narrow emit surface the coordinator depends on.
type Broadcaster interface {
	EmitToRoom(roomID string, event string, payload interface{})
	EmitToPlayer(playerID string, event string, payload interface{})
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PlayerScore struct {
	PlayerID       string `json:"playerId"`
	Name           string `json:"name"`
	Cash           int    `json:"cash"`
	PropertyValues int    `json:"propertyValues"`
	TotalAssets    int    `json:"totalAssets"`
}
