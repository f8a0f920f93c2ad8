package game

import (
	"context"
	"time"

	game_constants "Tycoon/constants/game"
	models "Tycoon/models/postgres"
)

// Repository is the persistence surface the core depends on. The in-memory
// GameState stays authoritative; the store is the secondary/recovery copy,
// so writes may be applied fire-and-forget.
type Repository interface {
	GetRoom(ctx context.Context, id string) (*models.GameRoom, error)
	ListPlayers(ctx context.Context, roomID string) ([]*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, fields map[string]interface{}) error
	ListProperties(ctx context.Context, roomID string) ([]*models.Property, error)
	UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) error
	CreateProperties(ctx context.Context, properties []*models.Property) error
	UpdateRoomStatus(ctx context.Context, id string, status models.RoomStatus) error
	AppendTransaction(ctx context.Context, tx *models.Transaction) error
}

// RetryPolicy is the bounded retry-with-backoff used at the repository
// read boundary when a freshly created player row is not visible yet.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      float64
	MaxDelay    time.Duration
}

// Delay returns how long to wait before the given retry (0-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 0; i < attempt; i++ {
		d *= p.Factor
	}
	if max := float64(p.MaxDelay); d > max {
		d = max
	}
	return time.Duration(d)
}

func DefaultJoinRetry() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: game_constants.JoinMaxRetries,
		BaseDelay:   game_constants.JoinBaseDelay,
		Factor:      game_constants.JoinDelayFactor,
		MaxDelay:    game_constants.JoinMaxDelay,
	}
}
