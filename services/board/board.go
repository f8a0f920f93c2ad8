package board

import (
	"fmt"

	game_constants "Tycoon/constants/game"
	models "Tycoon/models/postgres"

	uuid "github.com/satori/go.uuid"
)

// Corner tile positions for a board of the given size.
func JailPosition(boardSize int) int        { return boardSize / 4 }
func FreeParkingPosition(boardSize int) int { return boardSize / 2 }
func GoToJailPosition(boardSize int) int    { return boardSize * 3 / 4 }

var colorGroups = []string{"brown", "lightblue", "pink", "orange", "red", "yellow", "green", "blue"}

var propertyNames = []string{
	"Mediterranean Avenue", "Baltic Avenue", "Oriental Avenue", "Vermont Avenue",
	"Connecticut Avenue", "St. Charles Place", "States Avenue", "Virginia Avenue",
	"St. James Place", "Tennessee Avenue", "New York Avenue", "Kentucky Avenue",
	"Indiana Avenue", "Illinois Avenue", "Atlantic Avenue", "Ventnor Avenue",
	"Marvin Gardens", "Pacific Avenue", "North Carolina Avenue", "Pennsylvania Avenue",
	"Park Place", "Boardwalk", "Reading Railroad", "Pennsylvania Railroad",
	"B&O Railroad", "Short Line", "Electric Company", "Water Works",
}

// Generate builds the full tile set for a room. The layout is deterministic
// for a given board size: four corners, then railroads/utilities/tax/card
// tiles on fixed strides, plain properties everywhere else.
func Generate(roomID string, boardSize int) []*models.Property {
	properties := []*models.Property{
		tile(roomID, "GO", models.TileGo, 0),
		tile(roomID, "Jail", models.TileJail, JailPosition(boardSize)),
		tile(roomID, "Free Parking", models.TileFreeParking, FreeParkingPosition(boardSize)),
		tile(roomID, "Go To Jail", models.TileGoToJail, GoToJailPosition(boardSize)),
	}

	propertyIndex := 0
	colorIndex := 0
	railroads := 0
	utilities := 0

	for i := 1; i < boardSize; i++ {
		if i == JailPosition(boardSize) || i == FreeParkingPosition(boardSize) || i == GoToJailPosition(boardSize) {
			continue
		}

		switch {
		case (i-1)%10 == 0 && railroads < 4:
			p := tile(roomID, fmt.Sprintf("Railroad %d", railroads+1), models.TileRailroad, i)
			p.Price = 200
			p.Rent = 25
			p.RentWithHouse = 50
			p.RentWithHotel = 100
			properties = append(properties, p)
			railroads++
			propertyIndex++
		case (i-1)%15 == 0 && utilities < 2:
			name := "Electric Company"
			if utilities == 1 {
				name = "Water Works"
			}
			p := tile(roomID, name, models.TileUtility, i)
			p.Price = 150
			p.Rent = 4
			p.RentWithHouse = 10
			p.RentWithHotel = 20
			properties = append(properties, p)
			utilities++
			propertyIndex++
		case (i-1)%8 == 0:
			properties = append(properties, tile(roomID, "Tax", models.TileTax, i))
		case (i-1)%12 == 0:
			properties = append(properties, tile(roomID, "Chance", models.TileChance, i))
		case (i-1)%14 == 0:
			properties = append(properties, tile(roomID, "Community Chest", models.TileCommunityChest, i))
		default:
			basePrice := 60 + colorIndex*20
			baseRent := basePrice / 10
			p := tile(roomID, propertyNames[propertyIndex%len(propertyNames)], models.TileProperty, i)
			p.Price = basePrice
			p.Rent = baseRent
			p.RentWithHouse = baseRent * 5
			p.RentWithHotel = baseRent * 10
			p.ColorGroup = colorGroups[colorIndex%len(colorGroups)]
			properties = append(properties, p)
			propertyIndex++
			if propertyIndex%2 == 0 {
				colorIndex++
			}
		}
	}

	return properties
}

func tile(roomID, name string, t models.PropertyType, position int) *models.Property {
	return &models.Property{
		ID:       uuid.NewV4().String(),
		RoomID:   roomID,
		Name:     name,
		Type:     t,
		Position: position,
	}
}

// IsPurchasable reports whether a tile can be bought or auctioned at all.
func IsPurchasable(t models.PropertyType) bool {
	return t == models.TileProperty || t == models.TileRailroad || t == models.TileUtility
}

// Rent computes what a player owes when landing on an owned tile.
// Priority for streets: hotel > per-house > full-group double > base.
// Railroads double per extra railroad owned, utilities multiply the dice
// total (4x, or 10x when the owner holds both).
// Mortgaged tiles collect nothing.
func Rent(p *models.Property, ownedInGroup, groupSize, diceTotal int) int {
	if p.IsMortgaged || p.OwnerID == nil {
		return 0
	}

	switch p.Type {
	case models.TileRailroad:
		rent := p.Rent
		for i := 1; i < ownedInGroup; i++ {
			rent *= 2
		}
		return rent
	case models.TileUtility:
		if ownedInGroup >= 2 {
			return 10 * diceTotal
		}
		return 4 * diceTotal
	case models.TileProperty:
		if p.HasHotel {
			return p.RentWithHotel
		}
		if p.Houses > 0 {
			return p.RentWithHouse * p.Houses
		}
		if groupSize > 0 && ownedInGroup == groupSize {
			return p.Rent * 2
		}
		return p.Rent
	}
	return 0
}

// AssetValue is the scoring value of an owned tile at game end.
func AssetValue(p *models.Property) int {
	value := p.Price + p.Houses*game_constants.HouseAssetValue
	if p.HasHotel {
		value += game_constants.HotelAssetValue
	}
	return value
}
