package sync

import (
	"context"

	models "Tycoon/models/postgres"

	"gorm.io/gorm"
)

// SyncManager is the gorm-backed persistence layer for game rooms. It
// implements the repository surface the game coordinator writes through.
type SyncManager struct {
	db *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(db *gorm.DB) *SyncManager {
	return &SyncManager{db: db}
}

func (sm *SyncManager) GetRoom(ctx context.Context, id string) (*models.GameRoom, error) {
	var room models.GameRoom
	if err := sm.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (sm *SyncManager) ListPlayers(ctx context.Context, roomID string) ([]*models.Player, error) {
	var players []*models.Player
	err := sm.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("turn_order asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (sm *SyncManager) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	if err := sm.db.WithContext(ctx).First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (sm *SyncManager) UpdatePlayer(ctx context.Context, id string, fields map[string]interface{}) error {
	return sm.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (sm *SyncManager) ListProperties(ctx context.Context, roomID string) ([]*models.Property, error) {
	var properties []*models.Property
	err := sm.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("position asc").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (sm *SyncManager) UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) error {
	return sm.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// CreateProperties inserts a full generated board in one transaction so a
// half-written board never becomes visible.
func (sm *SyncManager) CreateProperties(ctx context.Context, properties []*models.Property) error {
	return sm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&properties).Error
	})
}

func (sm *SyncManager) UpdateRoomStatus(ctx context.Context, id string, status models.RoomStatus) error {
	return sm.db.WithContext(ctx).
		Model(&models.GameRoom{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (sm *SyncManager) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	return sm.db.WithContext(ctx).Create(tx).Error
}

// ListTransactions returns a room's ledger, newest first.
func (sm *SyncManager) ListTransactions(ctx context.Context, roomID string, limit int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	q := sm.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
