package game

import (
	"fmt"
	"time"

	game_constants "Tycoon/constants/game"

	models "Tycoon/models/postgres"

	uuid "github.com/satori/go.uuid"
)

type TradeStatus string

const (
	TradePending   TradeStatus = "PENDING"
	TradeAccepted  TradeStatus = "ACCEPTED"
	TradeRejected  TradeStatus = "REJECTED"
	TradeCancelled TradeStatus = "CANCELLED"
)

// TradeProposal is an offer from one player to another: properties and
// cash on both sides. It is re-validated at acceptance time because the
// board can change while the offer sits open.
type TradeProposal struct {
	ID                  string      `json:"id"`
	FromPlayerID        string      `json:"fromPlayerId"`
	ToPlayerID          string      `json:"toPlayerId"`
	OfferedProperties   []string    `json:"offeredProperties"`
	OfferedCash         int         `json:"offeredCash"`
	RequestedProperties []string    `json:"requestedProperties"`
	RequestedCash       int         `json:"requestedCash"`
	Status              TradeStatus `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// validateTradeSides checks cash and ownership of both legs against the
// current board. Used both at proposal and again at acceptance.
func (c *Coordinator) validateTradeSides(s *session, t *TradeProposal) error {
	from := s.state.FindPlayer(t.FromPlayerID)
	to := s.state.FindPlayer(t.ToPlayerID)
	if from == nil || to == nil {
		return errNotFound("Trade participant not found")
	}
	if from.IsBankrupt || to.IsBankrupt {
		return errRule("Bankrupt players cannot trade!")
	}
	if from.Cash < t.OfferedCash {
		return errRule("Proposer does not have enough cash for this trade!")
	}
	if to.Cash < t.RequestedCash {
		return errRule("Recipient does not have enough cash for this trade!")
	}
	for _, id := range t.OfferedProperties {
		prop := s.state.FindProperty(id)
		if prop == nil {
			return errNotFound("Offered property not found")
		}
		if prop.OwnerID != t.FromPlayerID {
			return errRule("Proposer no longer owns %s!", prop.Name)
		}
	}
	for _, id := range t.RequestedProperties {
		prop := s.state.FindProperty(id)
		if prop == nil {
			return errNotFound("Requested property not found")
		}
		if prop.OwnerID != t.ToPlayerID {
			return errRule("Recipient no longer owns %s!", prop.Name)
		}
	}
	return nil
}

func (c *Coordinator) handleProposeTrade(s *session, a ProposeTrade) error {
	if a.ToPlayerID == a.PlayerID {
		return errRule("You cannot trade with yourself!")
	}
	trade := &TradeProposal{
		ID:                  uuid.NewV4().String(),
		FromPlayerID:        a.PlayerID,
		ToPlayerID:          a.ToPlayerID,
		OfferedProperties:   a.OfferedProperties,
		OfferedCash:         a.OfferedCash,
		RequestedProperties: a.RequestedProperties,
		RequestedCash:       a.RequestedCash,
		Status:              TradePending,
		CreatedAt:           time.Now(),
	}
	if err := c.validateTradeSides(s, trade); err != nil {
		return err
	}

	s.trades[trade.ID] = trade
	c.broadcast.EmitToRoom(s.roomID, EventTradeProposed, trade)

	from := s.state.FindPlayer(trade.FromPlayerID)
	to := s.state.FindPlayer(trade.ToPlayerID)
	s.state.Message = fmt.Sprintf("%s proposed a trade to %s.", from.Name, to.Name)
	return nil
}

func (c *Coordinator) handleRespondTrade(s *session, a RespondTrade) error {
	trade, ok := s.trades[a.TradeID]
	if !ok {
		return errNotFound("Trade not found")
	}
	if trade.Status != TradePending {
		return errRule("Trade is no longer open!")
	}
	if trade.ToPlayerID != a.PlayerID {
		return errRule("Only the recipient can respond to this trade!")
	}

	if !a.Accept {
		trade.Status = TradeRejected
		c.broadcast.EmitToRoom(s.roomID, EventTradeResolved, trade)
		s.state.Message = "Trade was rejected."
		c.scheduleTradePrune(s, trade.ID)
		return nil
	}

	// the board may have moved on since the proposal, a stale trade is
	// cancelled rather than partially applied
	if err := c.validateTradeSides(s, trade); err != nil {
		trade.Status = TradeCancelled
		c.broadcast.EmitToRoom(s.roomID, EventTradeCancelled, trade)
		s.state.Message = "Trade was cancelled: the offer is no longer valid."
		c.scheduleTradePrune(s, trade.ID)
		return errStale("Trade is no longer valid: %s", err.Error())
	}

	from := s.state.FindPlayer(trade.FromPlayerID)
	to := s.state.FindPlayer(trade.ToPlayerID)

	if trade.OfferedCash > 0 {
		c.transfer(s, from, to, trade.OfferedCash, models.TxTrade, "Trade: cash offered")
	}
	if trade.RequestedCash > 0 {
		c.transfer(s, to, from, trade.RequestedCash, models.TxTrade, "Trade: cash requested")
	}
	for _, id := range trade.OfferedProperties {
		prop := s.state.FindProperty(id)
		prop.OwnerID = to.ID
		c.persistProperty(prop)
	}
	for _, id := range trade.RequestedProperties {
		prop := s.state.FindProperty(id)
		prop.OwnerID = from.ID
		c.persistProperty(prop)
	}
	c.appendTransaction(s, models.TxTrade, 0, &from.ID, &to.ID,
		fmt.Sprintf("Trade between %s and %s completed", from.Name, to.Name))

	trade.Status = TradeAccepted
	c.broadcast.EmitToRoom(s.roomID, EventTradeResolved, trade)
	s.state.Message = fmt.Sprintf("Trade between %s and %s completed!", from.Name, to.Name)
	c.scheduleTradePrune(s, trade.ID)
	return nil
}

func (c *Coordinator) handleCancelTrade(s *session, a CancelTrade) error {
	trade, ok := s.trades[a.TradeID]
	if !ok {
		return errNotFound("Trade not found")
	}
	if trade.Status != TradePending {
		return errRule("Trade is no longer open!")
	}
	if trade.FromPlayerID != a.PlayerID {
		return errRule("Only the proposer can cancel this trade!")
	}

	trade.Status = TradeCancelled
	c.broadcast.EmitToRoom(s.roomID, EventTradeCancelled, trade)
	s.state.Message = "Trade was withdrawn."
	c.scheduleTradePrune(s, trade.ID)
	return nil
}

func (c *Coordinator) scheduleTradePrune(s *session, tradeID string) {
	roomID := s.roomID
	c.afterFunc(game_constants.TradeRetention, func() {
		c.Dispatch(pruneTrade{ActionBase: ActionBase{RoomID: roomID}, TradeID: tradeID})
	})
}
