package postgres

/*
 * 'Player' represents the state of a player inside a game room.
 * Player IDs are client-generated, see the join controller.
 * Bankruptcy is terminal: rows are never deleted mid-game.
 */
type Player struct {
	ID                    string `gorm:"primaryKey;size:50;not null"`
	RoomID                string `gorm:"size:50;not null;index:idx_players_room"`
	Name                  string `gorm:"size:50;not null"`
	Color                 string `gorm:"size:20"`
	Cash                  int    `gorm:"default:1500"`
	Position              int    `gorm:"default:0"`
	InJail                bool   `gorm:"default:false"`
	JailTurns             int    `gorm:"default:0"`
	IsReady               bool   `gorm:"default:false"`
	IsBankrupt            bool   `gorm:"default:false"`
	TurnOrder             int    `gorm:"default:0"`
	GetOutOfJailFreeCards int    `gorm:"default:0"`

	GameRoom GameRoom `gorm:"foreignKey:RoomID"`
}
