package game

import (
	"fmt"
	"time"

	game_constants "Tycoon/constants/game"
	"Tycoon/services/board"

	models "Tycoon/models/postgres"

	uuid "github.com/satori/go.uuid"
)

type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "ACTIVE"
	AuctionEnded     AuctionStatus = "ENDED"
	AuctionCancelled AuctionStatus = "CANCELLED"
)

// Auction is a timed bidding round for one unowned property. Only one
// auction per property may be active at a time.
type Auction struct {
	ID            string        `json:"id"`
	PropertyID    string        `json:"propertyId"`
	PropertyName  string        `json:"propertyName"`
	StartingBid   int           `json:"startingBid"`
	CurrentBid    int           `json:"currentBid"`
	CurrentWinner string        `json:"currentWinner,omitempty"`
	Participants  []string      `json:"participants"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	Status        AuctionStatus `json:"status"`
}

func (c *Coordinator) handleStartAuction(s *session, a StartAuction) error {
	if s.state.Room.HostID != a.PlayerID {
		return errRule("Only the host can start an auction!")
	}
	prop := s.state.FindProperty(a.PropertyID)
	if prop == nil {
		return errNotFound("Property not found")
	}
	if !board.IsPurchasable(prop.Type) || prop.Price <= 0 {
		return errRule("This tile cannot be auctioned!")
	}
	if prop.OwnerID != "" {
		return errRule("Property is already owned!")
	}
	for _, au := range s.auctions {
		if au.PropertyID == prop.ID && au.Status == AuctionActive {
			return errRule("An auction for this property is already running!")
		}
	}

	now := time.Now()
	startingBid := prop.Price * game_constants.AuctionStartBidPct / 100
	auction := &Auction{
		ID:           uuid.NewV4().String(),
		PropertyID:   prop.ID,
		PropertyName: prop.Name,
		StartingBid:  startingBid,
		CurrentBid:   startingBid,
		Participants: []string{},
		StartTime:    now,
		EndTime:      now.Add(game_constants.AuctionDuration),
		Status:       AuctionActive,
	}
	s.auctions[auction.ID] = auction

	roomID, auctionID := s.roomID, auction.ID
	c.afterFunc(game_constants.AuctionDuration, func() {
		c.Dispatch(auctionExpired{ActionBase: ActionBase{RoomID: roomID}, AuctionID: auctionID})
	})

	c.broadcast.EmitToRoom(s.roomID, EventAuctionStarted, auction)
	s.state.Message = fmt.Sprintf("Auction started for %s! Starting bid: $%d.",
		prop.Name, auction.StartingBid)
	return nil
}

func (c *Coordinator) handlePlaceBid(s *session, a PlaceBid) error {
	auction, ok := s.auctions[a.AuctionID]
	if !ok {
		return errNotFound("Auction not found")
	}
	if auction.Status != AuctionActive {
		return errRule("Auction is no longer active!")
	}
	p := s.state.FindPlayer(a.PlayerID)
	if p == nil {
		return errNotFound("Player not found")
	}
	if p.IsBankrupt {
		return errRule("You are bankrupt and out of the game!")
	}
	if a.BidAmount > p.Cash {
		return errRule("You cannot bid more than you have!")
	}
	// CurrentBid starts at the starting bid, so the first bid must beat it too
	if a.BidAmount <= auction.CurrentBid {
		return errRule("Bid must be higher than the current bid of $%d!", auction.CurrentBid)
	}

	auction.CurrentBid = a.BidAmount
	auction.CurrentWinner = p.ID
	if !contains(auction.Participants, p.ID) {
		auction.Participants = append(auction.Participants, p.ID)
	}
	c.broadcast.EmitToRoom(s.roomID, EventBidPlaced, map[string]interface{}{
		"auctionId":    auction.ID,
		"playerId":     p.ID,
		"playerName":   p.Name,
		"bidAmount":    a.BidAmount,
		"participants": auction.Participants,
	})
	s.state.Message = fmt.Sprintf("%s bid $%d on %s!", p.Name, a.BidAmount, auction.PropertyName)
	return nil
}

// handleAuctionExpired settles the auction when its timer fires. The
// status guard keeps a late timer from touching a cancelled auction.
func (c *Coordinator) handleAuctionExpired(s *session, a auctionExpired) error {
	auction, ok := s.auctions[a.AuctionID]
	if !ok || auction.Status != AuctionActive {
		return nil
	}
	auction.Status = AuctionEnded

	if auction.CurrentWinner != "" {
		winner := s.state.FindPlayer(auction.CurrentWinner)
		prop := s.state.FindProperty(auction.PropertyID)
		if winner != nil && prop != nil && prop.OwnerID == "" {
			prop.OwnerID = winner.ID
			c.persistProperty(prop)
			c.debit(s, winner, auction.CurrentBid, models.TxAuction,
				fmt.Sprintf("Won auction for %s", prop.Name))
			s.state.Message = fmt.Sprintf("%s won the auction for %s at $%d!",
				winner.Name, prop.Name, auction.CurrentBid)
			// the winner's cash may have drained since the bid was placed
			c.settleBankruptcies(s)
		}
	} else {
		s.state.Message = fmt.Sprintf("Auction for %s ended with no bids.", auction.PropertyName)
	}

	c.broadcast.EmitToRoom(s.roomID, EventAuctionEnded, auction)
	c.scheduleAuctionPrune(s, auction.ID)
	return nil
}

func (c *Coordinator) handleCancelAuction(s *session, a CancelAuction) error {
	if s.state.Room.HostID != a.PlayerID {
		return errRule("Only the host can cancel an auction!")
	}
	auction, ok := s.auctions[a.AuctionID]
	if !ok {
		return errNotFound("Auction not found")
	}
	if auction.Status != AuctionActive {
		return errRule("Auction is no longer active!")
	}

	auction.Status = AuctionCancelled
	c.broadcast.EmitToRoom(s.roomID, EventAuctionEnded, auction)
	s.state.Message = fmt.Sprintf("Auction for %s was cancelled by the host.", auction.PropertyName)
	c.scheduleAuctionPrune(s, auction.ID)
	return nil
}

// Finished auctions stay readable for a grace period so clients can
// render the outcome, then the record is dropped.
func (c *Coordinator) scheduleAuctionPrune(s *session, auctionID string) {
	roomID := s.roomID
	c.afterFunc(game_constants.AuctionRetention, func() {
		c.Dispatch(pruneAuction{ActionBase: ActionBase{RoomID: roomID}, AuctionID: auctionID})
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
