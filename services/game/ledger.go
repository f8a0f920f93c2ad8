package game

import (
	"context"
	"fmt"
	"log"
	"sort"

	game_constants "Tycoon/constants/game"

	models "Tycoon/models/postgres"
)

// Debits are applied unconditionally, cash is allowed to go negative so
// the bankruptcy check right after has a uniform trigger.

func (c *Coordinator) debit(s *session, p *Player, amount int, txType models.TransactionType, desc string) {
	p.Cash -= amount
	c.persistPlayer(p)
	c.appendTransaction(s, txType, amount, &p.ID, nil, desc)
}

func (c *Coordinator) credit(s *session, p *Player, amount int, txType models.TransactionType, desc string) {
	p.Cash += amount
	c.persistPlayer(p)
	c.appendTransaction(s, txType, amount, nil, &p.ID, desc)
}

// transfer moves cash between two players and records one transaction.
// Player-to-player transfers conserve the system-wide total.
func (c *Coordinator) transfer(s *session, from, to *Player, amount int, txType models.TransactionType, desc string) {
	from.Cash -= amount
	to.Cash += amount
	c.persistPlayer(from)
	c.persistPlayer(to)
	c.appendTransaction(s, txType, amount, &from.ID, &to.ID, desc)
}

func (c *Coordinator) appendTransaction(s *session, txType models.TransactionType, amount int, from, to *string, desc string) {
	record := &models.Transaction{
		RoomID:      s.roomID,
		Type:        txType,
		Amount:      amount,
		FromPlayer:  from,
		ToPlayer:    to,
		Description: desc,
	}
	go func() {
		if err := c.repo.AppendTransaction(context.Background(), record); err != nil {
			log.Printf("[LEDGER-ERROR] appending %s transaction for room %s: %v", txType, s.roomID, err)
		}
	}()
}

func (c *Coordinator) persistPlayer(p *Player) {
	id := p.ID
	fields := map[string]interface{}{
		"cash":                       p.Cash,
		"position":                   p.Position,
		"in_jail":                    p.InJail,
		"jail_turns":                 p.JailTurns,
		"is_ready":                   p.IsReady,
		"is_bankrupt":                p.IsBankrupt,
		"get_out_of_jail_free_cards": p.GetOutOfJailFreeCards,
	}
	go func() {
		if err := c.repo.UpdatePlayer(context.Background(), id, fields); err != nil {
			log.Printf("[PERSIST-ERROR] player %s: %v", id, err)
		}
	}()
}

func (c *Coordinator) persistProperty(p *Property) {
	id := p.ID
	var owner interface{}
	if p.OwnerID != "" {
		owner = p.OwnerID
	}
	fields := map[string]interface{}{
		"owner_id":     owner,
		"houses":       p.Houses,
		"has_hotel":    p.HasHotel,
		"is_mortgaged": p.IsMortgaged,
	}
	go func() {
		if err := c.repo.UpdateProperty(context.Background(), id, fields); err != nil {
			log.Printf("[PERSIST-ERROR] property %s: %v", id, err)
		}
	}()
}

func (c *Coordinator) persistRoomStatus(s *session, status models.RoomStatus) {
	roomID := s.roomID
	go func() {
		if err := c.repo.UpdateRoomStatus(context.Background(), roomID, status); err != nil {
			log.Printf("[PERSIST-ERROR] room %s status: %v", roomID, err)
		}
	}()
}

// settleBankruptcies marks every player with negative cash bankrupt and
// returns all of their holdings to the bank, then re-evaluates game end.
// Properties never go to the creditor; this matches the reference rules.
func (c *Coordinator) settleBankruptcies(s *session) {
	for _, p := range s.state.Room.Players {
		if p.IsBankrupt || p.Cash >= 0 {
			continue
		}
		p.IsBankrupt = true
		c.persistPlayer(p)

		for _, prop := range s.state.OwnedBy(p.ID) {
			prop.OwnerID = ""
			prop.Houses = 0
			prop.HasHotel = false
			prop.IsMortgaged = false
			c.persistProperty(prop)
		}

		c.appendTransaction(s, models.TxBankruptcy, 0, &p.ID, nil,
			fmt.Sprintf("%s declared bankruptcy", p.Name))
		log.Printf("[BANKRUPTCY] player %s (%s) in room %s", p.ID, p.Name, s.roomID)
		s.state.Message = fmt.Sprintf("%s has gone bankrupt and is out of the game!", p.Name)
	}

	if active := s.state.ActivePlayers(); len(active) == 1 && s.state.Room.Status == models.RoomPlaying {
		winner := active[0]
		c.finishGame(s, fmt.Sprintf("%s wins the game! All other players have gone bankrupt.", winner.Name))
	}
}

// finishGame flips the room to FINISHED, publishes the score breakdown
// and schedules session eviction.
func (c *Coordinator) finishGame(s *session, reason string) {
	s.state.Room.Status = models.RoomFinished
	c.persistRoomStatus(s, models.RoomFinished)

	scores := c.scores(s)
	winnerName := ""
	if len(scores) > 0 {
		winnerName = scores[0].Name
		s.state.Message = fmt.Sprintf("%s %s wins with $%d total assets! (Cash: $%d, Properties: $%d)",
			reason, scores[0].Name, scores[0].TotalAssets, scores[0].Cash, scores[0].PropertyValues)
	} else {
		s.state.Message = reason
	}

	c.broadcast.EmitToRoom(s.roomID, EventGameEnded, map[string]interface{}{
		"winner": winnerName,
		"scores": scores,
	})

	roomID := s.roomID
	c.afterFunc(game_constants.TradeRetention, func() { c.Evict(roomID) })
}

// scores ranks the non-bankrupt players by total assets.
func (c *Coordinator) scores(s *session) []PlayerScore {
	var scores []PlayerScore
	for _, p := range s.state.ActivePlayers() {
		propertyValues := 0
		for _, prop := range s.state.OwnedBy(p.ID) {
			propertyValues += prop.Price + prop.Houses*game_constants.HouseAssetValue
			if prop.HasHotel {
				propertyValues += game_constants.HotelAssetValue
			}
		}
		scores = append(scores, PlayerScore{
			PlayerID:       p.ID,
			Name:           p.Name,
			Cash:           p.Cash,
			PropertyValues: propertyValues,
			TotalAssets:    p.Cash + propertyValues,
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].TotalAssets > scores[j].TotalAssets })
	return scores
}
