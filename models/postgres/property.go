package postgres

type PropertyType string

const (
	TileGo             PropertyType = "GO"
	TileJail           PropertyType = "JAIL"
	TileFreeParking    PropertyType = "FREE_PARKING"
	TileGoToJail       PropertyType = "GO_TO_JAIL"
	TileTax            PropertyType = "TAX"
	TileChance         PropertyType = "CHANCE"
	TileCommunityChest PropertyType = "COMMUNITY_CHEST"
	TileRailroad       PropertyType = "RAILROAD"
	TileUtility        PropertyType = "UTILITY"
	TileProperty       PropertyType = "PROPERTY"
)

/*
 * 'Property' is one board tile of a room. Generated once when the game
 * starts, mutated (owner/houses/mortgage) during play, never deleted.
 */
type Property struct {
	ID            string       `gorm:"primaryKey;size:50;not null"`
	RoomID        string       `gorm:"size:50;not null;index:idx_properties_room"`
	Name          string       `gorm:"size:100;not null"`
	Type          PropertyType `gorm:"size:20;not null"`
	Position      int          `gorm:"not null"`
	Price         int          `gorm:"default:0"`
	Rent          int          `gorm:"default:0"`
	RentWithHouse int          `gorm:"default:0"`
	RentWithHotel int          `gorm:"default:0"`
	ColorGroup    string       `gorm:"size:20"`
	Houses        int          `gorm:"default:0"`
	HasHotel      bool         `gorm:"default:false"`
	OwnerID       *string      `gorm:"size:50;index:idx_properties_owner"`
	IsMortgaged   bool         `gorm:"default:false"`

	GameRoom GameRoom `gorm:"foreignKey:RoomID"`
}
