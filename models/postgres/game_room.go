package postgres

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomWaiting  RoomStatus = "WAITING"
	RoomPlaying  RoomStatus = "PLAYING"
	RoomFinished RoomStatus = "FINISHED"
)

/*
 * 'GameRoom' defines the structure of a match room. It owns the players
 * and the generated board properties for one match.
 */
type GameRoom struct {
	ID         string         `gorm:"primaryKey;size:50;not null"`
	Name       string         `gorm:"size:100;not null"`
	BoardSize  int            `gorm:"default:40"`
	MaxPlayers int            `gorm:"default:6"`
	Status     RoomStatus     `gorm:"size:20;default:'WAITING';index:idx_game_rooms_status"`
	HostID     string         `gorm:"size:50;index:idx_game_rooms_host"`
	Settings   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Players    []*Player    `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Properties []*Property  `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (r *GameRoom) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.NewV4().String()
	}
	return nil
}
