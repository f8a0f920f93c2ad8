package game

// Action is one inbound player (or timer) command for a room. Every
// variant carries the room and acting player; the coordinator processes
// all actions of one room strictly in order.
type Action interface {
	Room() string
	Actor() string
	Validate() error
}

type ActionBase struct {
	RoomID   string
	PlayerID string
}

func (a ActionBase) Room() string  { return a.RoomID }
func (a ActionBase) Actor() string { return a.PlayerID }

func (a ActionBase) Validate() error {
	if a.RoomID == "" || a.PlayerID == "" {
		return errValidation("Missing room or player id")
	}
	return nil
}

type JoinRoom struct{ ActionBase }

// RefreshRoom reloads a room from the store, used after the REST start
// endpoint has generated the board.
type RefreshRoom struct{ ActionBase }

type PlayerReady struct {
	ActionBase
	IsReady bool
}

type RollDice struct{ ActionBase }

type EndTurn struct{ ActionBase }

type PayBail struct{ ActionBase }

type UseJailCard struct{ ActionBase }

type PropertyAction struct {
	ActionBase
	PropertyID string
}

func (a PropertyAction) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.PropertyID == "" {
		return errValidation("Missing property id")
	}
	return nil
}

type BuyProperty struct{ PropertyAction }
type BuildHouse struct{ PropertyAction }
type BuildHotel struct{ PropertyAction }
type MortgageProperty struct{ PropertyAction }
type UnmortgageProperty struct{ PropertyAction }
type SellHouse struct{ PropertyAction }

type ProposeTrade struct {
	ActionBase
	ToPlayerID          string
	OfferedProperties   []string
	OfferedCash         int
	RequestedProperties []string
	RequestedCash       int
}

func (a ProposeTrade) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.ToPlayerID == "" {
		return errValidation("Missing trade counterparty")
	}
	if a.OfferedCash < 0 || a.RequestedCash < 0 {
		return errValidation("Trade cash amounts cannot be negative")
	}
	return nil
}

type RespondTrade struct {
	ActionBase
	TradeID string
	Accept  bool
}

func (a RespondTrade) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.TradeID == "" {
		return errValidation("Missing trade id")
	}
	return nil
}

type CancelTrade struct {
	ActionBase
	TradeID string
}

func (a CancelTrade) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.TradeID == "" {
		return errValidation("Missing trade id")
	}
	return nil
}

type StartAuction struct{ PropertyAction }

type PlaceBid struct {
	ActionBase
	AuctionID string
	BidAmount int
}

func (a PlaceBid) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.AuctionID == "" {
		return errValidation("Missing auction id")
	}
	if a.BidAmount <= 0 {
		return errValidation("Bid must be positive")
	}
	return nil
}

type CancelAuction struct {
	ActionBase
	AuctionID string
}

func (a CancelAuction) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.AuctionID == "" {
		return errValidation("Missing auction id")
	}
	return nil
}

type ProposeGameEnd struct{ ActionBase }

type VoteGameEnd struct {
	ActionBase
	Agree bool
}

type SendChat struct {
	ActionBase
	Message string
}

func (a SendChat) Validate() error {
	if err := a.ActionBase.Validate(); err != nil {
		return err
	}
	if a.Message == "" {
		return errValidation("Empty chat message")
	}
	return nil
}

// Internal timer-driven actions. They go through the same per-room queue
// so the single-writer discipline also covers timers.

type auctionExpired struct {
	ActionBase
	AuctionID string
}

type pruneAuction struct {
	ActionBase
	AuctionID string
}

type pruneTrade struct {
	ActionBase
	TradeID string
}

func (a auctionExpired) Validate() error { return nil }
func (a pruneAuction) Validate() error   { return nil }
func (a pruneTrade) Validate() error     { return nil }
