package game

import (
	"fmt"

	game_constants "Tycoon/constants/game"
	"Tycoon/services/board"

	models "Tycoon/models/postgres"
)

func (c *Coordinator) handleBuyProperty(s *session, a BuyProperty) error {
	p, err := c.mustBeTurn(s, a.PlayerID)
	if err != nil {
		return err
	}
	if !s.state.DiceRolled {
		return errRule("Roll the dice before buying!")
	}
	prop := s.state.FindProperty(a.PropertyID)
	if prop == nil {
		return errNotFound("Property not found")
	}
	if !board.IsPurchasable(prop.Type) {
		return errRule("This tile cannot be bought!")
	}
	if prop.OwnerID != "" {
		return errRule("Property is already owned!")
	}
	if prop.Price <= 0 {
		return errRule("This property is not for sale!")
	}
	if p.Cash < prop.Price {
		return errRule("Not enough money to buy this property!")
	}

	prop.OwnerID = p.ID
	c.persistProperty(prop)
	c.debit(s, p, prop.Price, models.TxBuyProperty, fmt.Sprintf("Bought %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s bought %s for $%d!", p.Name, prop.Name, prop.Price)
	return nil
}

// ownedStreet covers the shared checks of the building actions. Building
// is intentionally not gated to the builder's turn.
func (c *Coordinator) ownedStreet(s *session, playerID, propertyID string) (*Player, *Property, error) {
	p := s.state.FindPlayer(playerID)
	if p == nil {
		return nil, nil, errNotFound("Player not found")
	}
	if p.IsBankrupt {
		return nil, nil, errRule("You are bankrupt and out of the game!")
	}
	prop := s.state.FindProperty(propertyID)
	if prop == nil {
		return nil, nil, errNotFound("Property not found")
	}
	if prop.OwnerID != playerID {
		return nil, nil, errRule("You do not own this property!")
	}
	return p, prop, nil
}

func (c *Coordinator) handleBuildHouse(s *session, a BuildHouse) error {
	p, prop, err := c.ownedStreet(s, a.PlayerID, a.PropertyID)
	if err != nil {
		return err
	}
	if prop.Type != models.TileProperty {
		return errRule("Houses can only be built on streets!")
	}
	if prop.HasHotel {
		return errRule("This property already has a hotel!")
	}
	if prop.Houses >= game_constants.MaxHousesPerProperty {
		return errRule("Maximum number of houses reached, build a hotel!")
	}
	if prop.IsMortgaged {
		return errRule("Cannot build on a mortgaged property!")
	}
	if !s.state.OwnsFullGroup(p.ID, prop.ColorGroup) {
		return errRule("You must own all properties of this color group to build!")
	}
	// even building: this street may not pull ahead of its group
	for _, other := range s.state.GroupStreets(prop.ColorGroup) {
		if other.ID != prop.ID && !other.HasHotel && prop.Houses > other.Houses {
			return errRule("Build houses evenly across the color group!")
		}
	}
	if p.Cash < game_constants.HouseCost {
		return errRule("Not enough money to build a house!")
	}

	prop.Houses++
	c.persistProperty(prop)
	c.debit(s, p, game_constants.HouseCost, models.TxBuildHouse,
		fmt.Sprintf("Built house on %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s built a house on %s (%d/%d)!",
		p.Name, prop.Name, prop.Houses, game_constants.MaxHousesPerProperty)
	return nil
}

func (c *Coordinator) handleBuildHotel(s *session, a BuildHotel) error {
	p, prop, err := c.ownedStreet(s, a.PlayerID, a.PropertyID)
	if err != nil {
		return err
	}
	if prop.Type != models.TileProperty {
		return errRule("Hotels can only be built on streets!")
	}
	if prop.HasHotel {
		return errRule("This property already has a hotel!")
	}
	if prop.Houses < game_constants.MaxHousesPerProperty {
		return errRule("You need 4 houses before building a hotel!")
	}
	if !s.state.OwnsFullGroup(p.ID, prop.ColorGroup) {
		return errRule("You must own all properties of this color group to build!")
	}
	if p.Cash < game_constants.HotelCost {
		return errRule("Not enough money to build a hotel!")
	}

	prop.Houses = 0
	prop.HasHotel = true
	c.persistProperty(prop)
	c.debit(s, p, game_constants.HotelCost, models.TxBuildHotel,
		fmt.Sprintf("Built hotel on %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s built a hotel on %s!", p.Name, prop.Name)
	return nil
}

func (c *Coordinator) handleSellHouse(s *session, a SellHouse) error {
	p, prop, err := c.ownedStreet(s, a.PlayerID, a.PropertyID)
	if err != nil {
		return err
	}
	if prop.HasHotel {
		return errRule("Sell the hotel is not supported, mortgage instead!")
	}
	if prop.Houses <= 0 {
		return errRule("No houses to sell on this property!")
	}
	// even selling: only the most built street of the group may shed one
	for _, other := range s.state.GroupStreets(prop.ColorGroup) {
		if other.ID != prop.ID && !other.HasHotel && other.Houses > prop.Houses {
			return errRule("Sell houses evenly across the color group!")
		}
	}

	prop.Houses--
	c.persistProperty(prop)
	refund := game_constants.HouseCost / 2
	c.credit(s, p, refund, models.TxSellHouse, fmt.Sprintf("Sold house on %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s sold a house on %s for $%d.", p.Name, prop.Name, refund)
	return nil
}

func (c *Coordinator) handleMortgage(s *session, a MortgageProperty) error {
	p, prop, err := c.ownedStreet(s, a.PlayerID, a.PropertyID)
	if err != nil {
		return err
	}
	if prop.IsMortgaged {
		return errRule("Property is already mortgaged!")
	}
	if prop.Houses > 0 || prop.HasHotel {
		return errRule("Sell all buildings before mortgaging!")
	}

	prop.IsMortgaged = true
	c.persistProperty(prop)
	value := prop.Price / 2
	c.credit(s, p, value, models.TxMortgage, fmt.Sprintf("Mortgaged %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s mortgaged %s for $%d.", p.Name, prop.Name, value)
	return nil
}

func (c *Coordinator) handleUnmortgage(s *session, a UnmortgageProperty) error {
	p, prop, err := c.ownedStreet(s, a.PlayerID, a.PropertyID)
	if err != nil {
		return err
	}
	if !prop.IsMortgaged {
		return errRule("Property is not mortgaged!")
	}
	principal := prop.Price / 2
	cost := principal + principal*game_constants.MortgageInterestPct/100
	if p.Cash < cost {
		return errRule("Not enough money to lift the mortgage!")
	}

	prop.IsMortgaged = false
	c.persistProperty(prop)
	c.debit(s, p, cost, models.TxUnmortgage, fmt.Sprintf("Unmortgaged %s", prop.Name))
	s.state.Message = fmt.Sprintf("%s lifted the mortgage on %s for $%d.", p.Name, prop.Name, cost)
	return nil
}
