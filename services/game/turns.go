package game

import (
	"fmt"

	game_constants "Tycoon/constants/game"
	"Tycoon/services/board"
	"Tycoon/services/cards"

	models "Tycoon/models/postgres"
)

func (c *Coordinator) handleRollDice(s *session, a RollDice) error {
	p, err := c.mustBeTurn(s, a.PlayerID)
	if err != nil {
		return err
	}
	if s.state.DiceRolled {
		return errRule("You already rolled the dice!")
	}

	d1 := s.rng.Intn(6) + 1
	d2 := s.rng.Intn(6) + 1
	s.state.DiceRolled = true
	s.state.LastDiceRoll = [2]int{d1, d2}

	if p.InJail {
		c.rollInJail(s, p, d1, d2)
		return nil
	}

	passedGo := c.movePlayer(s, p, d1+d2)
	message := fmt.Sprintf("%s rolled %d + %d = %d and moved to position %d",
		p.Name, d1, d2, d1+d2, p.Position)
	if passedGo {
		message += fmt.Sprintf(" and collected $%d for passing GO", game_constants.GoBonus)
	}

	if tile := s.state.PropertyAt(p.Position); tile != nil {
		message += fmt.Sprintf(" (%s)", tile.Name)
		message += c.applyLanding(s, p, tile, d1+d2)
	}

	s.state.Message = message
	return nil
}

// rollInJail: doubles release and move, otherwise the attempt counter
// grows until bail is forced on the third failure.
func (c *Coordinator) rollInJail(s *session, p *Player, d1, d2 int) {
	if d1 == d2 {
		p.InJail = false
		p.JailTurns = 0
		c.movePlayer(s, p, d1+d2)
		c.persistPlayer(p)
		message := fmt.Sprintf("%s rolled doubles (%d + %d) and got out of jail! Moved to position %d.",
			p.Name, d1, d2, p.Position)
		if tile := s.state.PropertyAt(p.Position); tile != nil {
			message += c.applyLanding(s, p, tile, d1+d2)
		}
		s.state.Message = message
		return
	}

	p.JailTurns++
	c.persistPlayer(p)

	if p.JailTurns < game_constants.MaxJailTurns {
		s.state.Message = fmt.Sprintf("%s rolled %d + %d and failed to roll doubles. Still in jail (%d/%d attempts).",
			p.Name, d1, d2, p.JailTurns, game_constants.MaxJailTurns)
		return
	}

	// Third failed attempt: bail is paid whether affordable or not, the
	// bankruptcy check right after picks up the pieces.
	p.InJail = false
	p.JailTurns = 0
	c.debit(s, p, game_constants.BailAmount, models.TxJailFine,
		"Forced bail payment after 3 turns in jail")
	s.state.Message = fmt.Sprintf("%s failed to roll doubles for the 3rd time and paid $%d bail to get out of jail!",
		p.Name, game_constants.BailAmount)
	c.settleBankruptcies(s)
}

// movePlayer advances forward with wrap-around, paying the GO bonus
// exactly once per crossing. Reports whether GO was passed.
func (c *Coordinator) movePlayer(s *session, p *Player, steps int) bool {
	oldPos := p.Position
	p.Position = (oldPos + steps) % s.state.Room.BoardSize
	c.persistPlayer(p)
	if p.Position <= oldPos {
		c.credit(s, p, game_constants.GoBonus, models.TxCollectGo, "Passed GO")
		return true
	}
	return false
}

// moveTo places the player on an absolute tile, paying GO when the move
// wraps past start.
func (c *Coordinator) moveTo(s *session, p *Player, position int) bool {
	target := position % s.state.Room.BoardSize
	passedGo := target <= p.Position
	p.Position = target
	c.persistPlayer(p)
	if passedGo {
		c.credit(s, p, game_constants.GoBonus, models.TxCollectGo, "Passed GO")
	}
	return passedGo
}

func (c *Coordinator) sendToJail(s *session, p *Player) {
	p.Position = board.JailPosition(s.state.Room.BoardSize)
	p.InJail = true
	p.JailTurns = 0
	c.persistPlayer(p)
}

// applyLanding runs the side effect of the tile the player stopped on
// and returns the message fragment describing it.
func (c *Coordinator) applyLanding(s *session, p *Player, tile *Property, diceTotal int) string {
	switch tile.Type {
	case models.TileGoToJail:
		c.sendToJail(s, p)
		c.appendTransaction(s, models.TxChanceCard, 0, &p.ID, nil, "Go to Jail")
		return " and was sent to jail!"

	case models.TileTax:
		c.debit(s, p, game_constants.TaxAmount, models.TxPayTax, "Tax payment")
		c.settleBankruptcies(s)
		return fmt.Sprintf(" and paid $%d in taxes!", game_constants.TaxAmount)

	case models.TileChance:
		card := s.chanceDeck.Draw()
		return ". " + c.applyCard(s, p, card)

	case models.TileCommunityChest:
		card := s.communityDeck.Draw()
		return ". " + c.applyCard(s, p, card)

	case models.TileProperty, models.TileRailroad, models.TileUtility:
		if tile.OwnerID == "" {
			if tile.Price > 0 {
				return ". Property available for purchase!"
			}
			return ""
		}
		if tile.OwnerID == p.ID {
			return ""
		}
		owner := s.state.FindPlayer(tile.OwnerID)
		if owner == nil || owner.IsBankrupt {
			return ""
		}
		if tile.IsMortgaged {
			return fmt.Sprintf(". %s is mortgaged, no rent due.", tile.Name)
		}
		ownedInGroup, groupSize := s.state.GroupCounts(tile)
		rent := board.Rent(&models.Property{
			Type:          tile.Type,
			Price:         tile.Price,
			Rent:          tile.Rent,
			RentWithHouse: tile.RentWithHouse,
			RentWithHotel: tile.RentWithHotel,
			Houses:        tile.Houses,
			HasHotel:      tile.HasHotel,
			OwnerID:       &tile.OwnerID,
		}, ownedInGroup, groupSize, diceTotal)
		if rent <= 0 {
			return ""
		}
		c.transfer(s, p, owner, rent, models.TxPayRent, fmt.Sprintf("Rent for %s", tile.Name))
		c.settleBankruptcies(s)
		return fmt.Sprintf(" and paid $%d rent to %s!", rent, owner.Name)
	}
	return ""
}

// applyCard executes one drawn card. Every draw writes one transaction
// record, amount 0 for the non-monetary effects.
func (c *Coordinator) applyCard(s *session, p *Player, card cards.Card) string {
	txType := models.TxChanceCard
	if card.Deck == cards.CommunityChest {
		txType = models.TxCommunityChestCard
	}
	message := fmt.Sprintf("%s drew a card: %q", p.Name, card.Description)
	amount := 0

	switch card.Effect {
	case cards.EffectMoveTo:
		passedGo := c.moveTo(s, p, card.Position)
		message += fmt.Sprintf(" and moved to position %d", p.Position)
		if passedGo {
			message += fmt.Sprintf(", collecting $%d for passing GO", game_constants.GoBonus)
		}

	case cards.EffectNearestRailroad:
		if pos, ok := c.nearestTile(s, p.Position, models.TileRailroad); ok {
			c.moveTo(s, p, pos)
			message += fmt.Sprintf(" and moved to position %d", p.Position)
		}

	case cards.EffectNearestUtility:
		if pos, ok := c.nearestTile(s, p.Position, models.TileUtility); ok {
			c.moveTo(s, p, pos)
			message += fmt.Sprintf(" and moved to position %d", p.Position)
		}

	case cards.EffectMoveBack:
		size := s.state.Room.BoardSize
		p.Position = (p.Position - card.Amount + size) % size
		c.persistPlayer(p)
		message += fmt.Sprintf(" and moved back to position %d", p.Position)

	case cards.EffectGoToJail:
		c.sendToJail(s, p)
		message += " and was sent to jail!"

	case cards.EffectGetOutOfJail:
		p.GetOutOfJailFreeCards++
		c.persistPlayer(p)
		message += " and received a Get Out of Jail Free card!"

	case cards.EffectPay:
		amount = card.Amount
		p.Cash -= amount
		c.persistPlayer(p)
		message += fmt.Sprintf(" and paid $%d", amount)

	case cards.EffectCollect:
		amount = card.Amount
		p.Cash += amount
		c.persistPlayer(p)
		message += fmt.Sprintf(" and collected $%d", amount)

	case cards.EffectStreetRepairs:
		for _, prop := range s.state.OwnedBy(p.ID) {
			amount += prop.Houses * card.PerHouse
			if prop.HasHotel {
				amount += card.PerHotel
			}
		}
		p.Cash -= amount
		c.persistPlayer(p)
		message += fmt.Sprintf(" and paid $%d in repairs", amount)

	case cards.EffectPerPlayer:
		// positive: pay each other player; negative: collect from each
		for _, other := range s.state.ActivePlayers() {
			if other.ID == p.ID {
				continue
			}
			p.Cash -= card.Amount
			other.Cash += card.Amount
			c.persistPlayer(other)
			amount += abs(card.Amount)
		}
		c.persistPlayer(p)
		if card.Amount >= 0 {
			message += fmt.Sprintf(" and paid $%d to each player", card.Amount)
		} else {
			message += fmt.Sprintf(" and collected $%d from each player", -card.Amount)
		}
	}

	c.appendTransaction(s, txType, amount, &p.ID, nil, card.Description)
	c.settleBankruptcies(s)
	return message
}

// nearestTile finds the next tile of the given type scanning forward
// from the position, wrapping past GO.
func (c *Coordinator) nearestTile(s *session, from int, t models.PropertyType) (int, bool) {
	size := s.state.Room.BoardSize
	for step := 1; step <= size; step++ {
		pos := (from + step) % size
		if tile := s.state.PropertyAt(pos); tile != nil && tile.Type == t {
			return pos, true
		}
	}
	return 0, false
}

func (c *Coordinator) handleEndTurn(s *session, a EndTurn) error {
	p := s.state.FindPlayer(a.PlayerID)
	if p == nil {
		return errNotFound("Player not found")
	}
	if s.state.CurrentPlayerTurn != a.PlayerID {
		return errRule("Not your turn!")
	}
	if !s.state.DiceRolled {
		return errRule("Roll dice first!")
	}

	isDoubles := s.state.LastDiceRoll[0] == s.state.LastDiceRoll[1]
	if isDoubles && !p.InJail && !p.IsBankrupt {
		s.state.DiceRolled = false
		s.state.Message = fmt.Sprintf("%s rolled doubles! Take another turn!", p.Name)
		return nil
	}

	next := s.state.NextTurn(a.PlayerID)
	s.state.CurrentPlayerTurn = next
	s.state.DiceRolled = false
	if nextPlayer := s.state.FindPlayer(next); nextPlayer != nil {
		s.state.Message = fmt.Sprintf("%s's turn ended. %s's turn now!", p.Name, nextPlayer.Name)
	}
	return nil
}

func (c *Coordinator) handlePayBail(s *session, a PayBail) error {
	p, err := c.mustBeTurn(s, a.PlayerID)
	if err != nil {
		return err
	}
	if !p.InJail {
		return errRule("You are not in jail!")
	}
	if p.Cash < game_constants.BailAmount {
		return errRule("Not enough money to pay bail!")
	}

	p.InJail = false
	p.JailTurns = 0
	c.debit(s, p, game_constants.BailAmount, models.TxJailFine, "Paid bail to get out of jail")
	s.state.DiceRolled = false // released players may roll
	s.state.Message = fmt.Sprintf("%s paid $%d bail and got out of jail!", p.Name, game_constants.BailAmount)
	return nil
}

func (c *Coordinator) handleUseJailCard(s *session, a UseJailCard) error {
	p, err := c.mustBeTurn(s, a.PlayerID)
	if err != nil {
		return err
	}
	if !p.InJail {
		return errRule("You are not in jail!")
	}
	if p.GetOutOfJailFreeCards <= 0 {
		return errRule("You do not have any Get Out of Jail Free cards!")
	}

	p.GetOutOfJailFreeCards--
	p.InJail = false
	p.JailTurns = 0
	c.persistPlayer(p)
	c.appendTransaction(s, models.TxChanceCard, 0, &p.ID, nil, "Used Get Out of Jail Free card")
	s.state.DiceRolled = false
	s.state.Message = fmt.Sprintf("%s used a Get Out of Jail Free card!", p.Name)
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
