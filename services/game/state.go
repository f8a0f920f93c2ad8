package game

import (
	"sort"

	models "Tycoon/models/postgres"
)

// Player is the in-memory view of one player. JSON tags match what the
// web client renders.
type Player struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Color                 string `json:"color"`
	Cash                  int    `json:"cash"`
	Position              int    `json:"position"`
	InJail                bool   `json:"inJail"`
	JailTurns             int    `json:"jailTurns"`
	IsReady               bool   `json:"isReady"`
	IsBankrupt            bool   `json:"isBankrupt"`
	TurnOrder             int    `json:"turnOrder"`
	GetOutOfJailFreeCards int    `json:"getOutOfJailFreeCards"`
}

// Property is the in-memory view of one board tile. An empty OwnerID
// means the bank holds it.
type Property struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          models.PropertyType `json:"type"`
	Position      int                 `json:"position"`
	Price         int                 `json:"price,omitempty"`
	Rent          int                 `json:"rent,omitempty"`
	RentWithHouse int                 `json:"rentWithHouse,omitempty"`
	RentWithHotel int                 `json:"rentWithHotel,omitempty"`
	ColorGroup    string              `json:"colorGroup,omitempty"`
	Houses        int                 `json:"houses"`
	HasHotel      bool                `json:"hasHotel"`
	OwnerID       string              `json:"ownerId,omitempty"`
	IsMortgaged   bool                `json:"isMortgaged"`
}

type Room struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	BoardSize  int               `json:"boardSize"`
	MaxPlayers int               `json:"maxPlayers"`
	Status     models.RoomStatus `json:"status"`
	HostID     string            `json:"hostId"`
	Players    []*Player         `json:"players"`
}

// GameState is the aggregate broadcast to clients after every mutation.
// It is owned exclusively by the room's actor goroutine.
type GameState struct {
	Room              *Room       `json:"gameRoom"`
	Properties        []*Property `json:"properties"`
	CurrentPlayerTurn string      `json:"currentPlayerTurn"`
	DiceRolled        bool        `json:"diceRolled"`
	LastDiceRoll      [2]int      `json:"lastDiceRoll"`
	Message           string      `json:"gameMessage"`
}

// FromModels assembles the in-memory state from persisted records.
// Turn goes to the lowest non-bankrupt turn order.
func FromModels(room *models.GameRoom, players []*models.Player, properties []*models.Property) *GameState {
	state := &GameState{
		Room: &Room{
			ID:         room.ID,
			Name:       room.Name,
			BoardSize:  room.BoardSize,
			MaxPlayers: room.MaxPlayers,
			Status:     room.Status,
			HostID:     room.HostID,
		},
		LastDiceRoll: [2]int{0, 0},
		Message:      "Game started! Good luck!",
	}
	for _, p := range players {
		state.Room.Players = append(state.Room.Players, &Player{
			ID:                    p.ID,
			Name:                  p.Name,
			Color:                 p.Color,
			Cash:                  p.Cash,
			Position:              p.Position,
			InJail:                p.InJail,
			JailTurns:             p.JailTurns,
			IsReady:               p.IsReady,
			IsBankrupt:            p.IsBankrupt,
			TurnOrder:             p.TurnOrder,
			GetOutOfJailFreeCards: p.GetOutOfJailFreeCards,
		})
	}
	sort.Slice(state.Room.Players, func(i, j int) bool {
		return state.Room.Players[i].TurnOrder < state.Room.Players[j].TurnOrder
	})
	for _, prop := range properties {
		owner := ""
		if prop.OwnerID != nil {
			owner = *prop.OwnerID
		}
		state.Properties = append(state.Properties, &Property{
			ID:            prop.ID,
			Name:          prop.Name,
			Type:          prop.Type,
			Position:      prop.Position,
			Price:         prop.Price,
			Rent:          prop.Rent,
			RentWithHouse: prop.RentWithHouse,
			RentWithHotel: prop.RentWithHotel,
			ColorGroup:    prop.ColorGroup,
			Houses:        prop.Houses,
			HasHotel:      prop.HasHotel,
			OwnerID:       owner,
			IsMortgaged:   prop.IsMortgaged,
		})
	}
	if active := state.ActivePlayers(); len(active) > 0 {
		state.CurrentPlayerTurn = active[0].ID
	}
	return state
}

func (g *GameState) FindPlayer(id string) *Player {
	for _, p := range g.Room.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *GameState) FindProperty(id string) *Property {
	for _, p := range g.Properties {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *GameState) PropertyAt(position int) *Property {
	for _, p := range g.Properties {
		if p.Position == position {
			return p
		}
	}
	return nil
}

// ActivePlayers returns the non-bankrupt players in turn order.
func (g *GameState) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.Room.Players {
		if !p.IsBankrupt {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].TurnOrder < active[j].TurnOrder })
	return active
}

// NextTurn returns the id of the player after the given one, skipping
// bankrupts and wrapping. If the given player is no longer active the
// turn falls to the first active player.
func (g *GameState) NextTurn(playerID string) string {
	active := g.ActivePlayers()
	if len(active) == 0 {
		return ""
	}
	idx := -1
	for i, p := range active {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	return active[(idx+1)%len(active)].ID
}

// GroupCounts reports how many tiles of the property's color group (or
// railroad/utility class) exist and how many its owner holds.
func (g *GameState) GroupCounts(prop *Property) (ownedInGroup, groupSize int) {
	for _, p := range g.Properties {
		sameGroup := false
		switch prop.Type {
		case models.TileRailroad, models.TileUtility:
			sameGroup = p.Type == prop.Type
		case models.TileProperty:
			sameGroup = p.Type == models.TileProperty && p.ColorGroup == prop.ColorGroup
		}
		if !sameGroup {
			continue
		}
		groupSize++
		if prop.OwnerID != "" && p.OwnerID == prop.OwnerID {
			ownedInGroup++
		}
	}
	return ownedInGroup, groupSize
}

// OwnsFullGroup reports whether the player holds every street of the group.
func (g *GameState) OwnsFullGroup(playerID, colorGroup string) bool {
	found := false
	for _, p := range g.Properties {
		if p.Type != models.TileProperty || p.ColorGroup != colorGroup {
			continue
		}
		found = true
		if p.OwnerID != playerID {
			return false
		}
	}
	return found
}

// GroupStreets returns all street tiles of a color group.
func (g *GameState) GroupStreets(colorGroup string) []*Property {
	var streets []*Property
	for _, p := range g.Properties {
		if p.Type == models.TileProperty && p.ColorGroup == colorGroup {
			streets = append(streets, p)
		}
	}
	return streets
}

// OwnedBy returns every property currently held by the player.
func (g *GameState) OwnedBy(playerID string) []*Property {
	var owned []*Property
	for _, p := range g.Properties {
		if p.OwnerID == playerID {
			owned = append(owned, p)
		}
	}
	return owned
}

// Snapshot deep-copies the state so broadcasts never race with the next
// action's mutations.
func (g *GameState) Snapshot() *GameState {
	clone := &GameState{
		Room: &Room{
			ID:         g.Room.ID,
			Name:       g.Room.Name,
			BoardSize:  g.Room.BoardSize,
			MaxPlayers: g.Room.MaxPlayers,
			Status:     g.Room.Status,
			HostID:     g.Room.HostID,
		},
		CurrentPlayerTurn: g.CurrentPlayerTurn,
		DiceRolled:        g.DiceRolled,
		LastDiceRoll:      g.LastDiceRoll,
		Message:           g.Message,
	}
	for _, p := range g.Room.Players {
		cp := *p
		clone.Room.Players = append(clone.Room.Players, &cp)
	}
	for _, p := range g.Properties {
		cp := *p
		clone.Properties = append(clone.Properties, &cp)
	}
	return clone
}
