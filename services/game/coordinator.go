package game

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"Tycoon/services/cards"

	models "Tycoon/models/postgres"
)

// SnapshotStore is the optional secondary copy of the live state
// (Redis in production). Failures are logged, never fatal.
type SnapshotStore interface {
	SaveGameState(roomID string, state interface{}) error
	DeleteGameState(roomID string) error
}

// Coordinator owns one session per active room and serializes every
// action against it. It is the only writer to persistence and the only
// source of broadcast events.
type Coordinator struct {
	repo      Repository
	broadcast Broadcaster
	snapshots SnapshotStore
	retry     RetryPolicy

	mu       sync.Mutex
	sessions map[string]*session

	// indirections so tests can control time
	afterFunc func(d time.Duration, f func())
	sleep     func(d time.Duration)
	seed      func() int64
}

// session is the per-room actor. Its fields are only touched by the
// goroutine draining the queue.
type session struct {
	roomID        string
	state         *GameState
	chanceDeck    *cards.Deck
	communityDeck *cards.Deck
	auctions      map[string]*Auction
	trades        map[string]*TradeProposal
	rng           *rand.Rand
	queue         chan envelope
}

type envelope struct {
	action Action
	done   chan error
}

type quitAction struct{ ActionBase }

func (quitAction) Validate() error { return nil }

func NewCoordinator(repo Repository, broadcast Broadcaster, snapshots SnapshotStore) *Coordinator {
	return &Coordinator{
		repo:      repo,
		broadcast: broadcast,
		snapshots: snapshots,
		retry:     DefaultJoinRetry(),
		sessions:  make(map[string]*session),
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		sleep:     time.Sleep,
		seed:      func() int64 { return time.Now().UnixNano() },
	}
}

// Dispatch validates an action at the boundary and enqueues it on the
// room's actor. Validation failures never reach the queue.
func (c *Coordinator) Dispatch(a Action) {
	if err := a.Validate(); err != nil {
		c.emitError(a.Actor(), err)
		return
	}
	s := c.ensureSession(a.Room())
	s.queue <- envelope{action: a}
}

// DispatchWait runs an action and blocks until the actor has processed
// it, returning the handler error. Used by tests and the socket layer
// where acknowledgement matters.
func (c *Coordinator) DispatchWait(a Action) error {
	if err := a.Validate(); err != nil {
		c.emitError(a.Actor(), err)
		return err
	}
	s := c.ensureSession(a.Room())
	done := make(chan error, 1)
	s.queue <- envelope{action: a, done: done}
	return <-done
}

func (c *Coordinator) ensureSession(roomID string) *session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[roomID]; ok {
		return s
	}
	s := &session{
		roomID:   roomID,
		auctions: make(map[string]*Auction),
		trades:   make(map[string]*TradeProposal),
		rng:      rand.New(rand.NewSource(c.seed())),
		queue:    make(chan envelope, 64),
	}
	s.chanceDeck = cards.NewDeck(cards.Chance, s.rng)
	s.communityDeck = cards.NewDeck(cards.CommunityChest, s.rng)
	c.sessions[roomID] = s
	go c.run(s)
	return s
}

// Evict removes a finished room's session. The actor goroutine exits on
// the quit action; late dispatches simply recreate a session.
func (c *Coordinator) Evict(roomID string) {
	c.mu.Lock()
	s, ok := c.sessions[roomID]
	if ok {
		delete(c.sessions, roomID)
	}
	c.mu.Unlock()
	if ok {
		s.queue <- envelope{action: quitAction{}}
		if c.snapshots != nil {
			if err := c.snapshots.DeleteGameState(roomID); err != nil {
				log.Printf("[SNAPSHOT-ERROR] deleting state for room %s: %v", roomID, err)
			}
		}
	}
}

func (c *Coordinator) run(s *session) {
	for env := range s.queue {
		if _, quit := env.action.(quitAction); quit {
			if env.done != nil {
				env.done <- nil
			}
			return
		}
		err := c.apply(s, env.action)
		if env.done != nil {
			env.done <- err
		}
	}
}

// apply is the single dispatch point: load state if needed, run the
// handler, then either surface the rejection to the actor only or
// broadcast the committed state to the whole room.
func (c *Coordinator) apply(s *session, a Action) error {
	if s.state == nil {
		if err := c.loadState(s); err != nil {
			c.emitError(a.Actor(), err)
			return err
		}
	}

	var err error
	switch act := a.(type) {
	case JoinRoom:
		err = c.handleJoin(s, act)
	case RefreshRoom:
		err = c.loadState(s)
	case PlayerReady:
		err = c.handleReady(s, act)
	case RollDice:
		err = c.handleRollDice(s, act)
	case EndTurn:
		err = c.handleEndTurn(s, act)
	case BuyProperty:
		err = c.handleBuyProperty(s, act)
	case BuildHouse:
		err = c.handleBuildHouse(s, act)
	case BuildHotel:
		err = c.handleBuildHotel(s, act)
	case MortgageProperty:
		err = c.handleMortgage(s, act)
	case UnmortgageProperty:
		err = c.handleUnmortgage(s, act)
	case SellHouse:
		err = c.handleSellHouse(s, act)
	case PayBail:
		err = c.handlePayBail(s, act)
	case UseJailCard:
		err = c.handleUseJailCard(s, act)
	case ProposeTrade:
		err = c.handleProposeTrade(s, act)
	case RespondTrade:
		err = c.handleRespondTrade(s, act)
	case CancelTrade:
		err = c.handleCancelTrade(s, act)
	case StartAuction:
		err = c.handleStartAuction(s, act)
	case PlaceBid:
		err = c.handlePlaceBid(s, act)
	case CancelAuction:
		err = c.handleCancelAuction(s, act)
	case ProposeGameEnd:
		err = c.handleProposeGameEnd(s, act)
	case VoteGameEnd:
		err = c.handleVoteGameEnd(s, act)
	case SendChat:
		err = c.handleChat(s, act)
	case auctionExpired:
		err = c.handleAuctionExpired(s, act)
	case pruneAuction:
		delete(s.auctions, act.AuctionID)
	case pruneTrade:
		delete(s.trades, act.TradeID)
	default:
		err = errValidation("Unknown action")
	}

	if err != nil {
		c.emitError(a.Actor(), err)
		return err
	}

	switch a.(type) {
	case SendChat, pruneAuction, pruneTrade:
		// no state change to broadcast
	default:
		c.broadcastState(s)
	}
	return nil
}

// loadState pulls room, players and properties from the repository.
// When the session already holds live state only the player roster is
// merged in: the in-memory copy stays authoritative for game fields.
func (c *Coordinator) loadState(s *session) error {
	ctx := context.Background()
	room, err := c.repo.GetRoom(ctx, s.roomID)
	if err != nil {
		log.Printf("[LOAD-ERROR] room %s: %v", s.roomID, err)
		return errNotFound("Game room not found")
	}
	players, err := c.repo.ListPlayers(ctx, s.roomID)
	if err != nil {
		log.Printf("[LOAD-ERROR] players of room %s: %v", s.roomID, err)
		return errNotFound("Game room not found")
	}
	properties, err := c.repo.ListProperties(ctx, s.roomID)
	if err != nil {
		log.Printf("[LOAD-ERROR] properties of room %s: %v", s.roomID, err)
		return errNotFound("Game room not found")
	}

	if s.state == nil || s.state.Room.Status != models.RoomPlaying {
		s.state = FromModels(room, players, properties)
		return nil
	}

	s.state.Room.Status = room.Status
	for _, p := range players {
		if existing := s.state.FindPlayer(p.ID); existing != nil {
			existing.Name = p.Name
			existing.Color = p.Color
			existing.IsReady = p.IsReady
			existing.TurnOrder = p.TurnOrder
			continue
		}
		s.state.Room.Players = append(s.state.Room.Players, &Player{
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
	sort.Slice(s.state.Room.Players, func(i, j int) bool {
		return s.state.Room.Players[i].TurnOrder < s.state.Room.Players[j].TurnOrder
	})
	return nil
}

// handleJoin absorbs replication lag: a player row created through the
// REST join endpoint may not be visible yet, so re-read with backoff
// before giving up.
func (c *Coordinator) handleJoin(s *session, a JoinRoom) error {
	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.retry.Delay(attempt - 1)
			log.Printf("[JOIN-RETRY] attempt %d for player %s in room %s (waiting %s)",
				attempt, a.PlayerID, a.RoomID, delay)
			c.sleep(delay)
		}
		if err := c.loadState(s); err != nil {
			return err
		}
		if p := s.state.FindPlayer(a.PlayerID); p != nil {
			log.Printf("[JOIN] player %s (%s) joined room %s", a.PlayerID, p.Name, a.RoomID)
			return nil
		}
	}
	log.Printf("[JOIN-ERROR] player %s not found in room %s after %d attempts",
		a.PlayerID, a.RoomID, c.retry.MaxAttempts)
	return errNotFound("Player not found in room. Please rejoin from the lobby.")
}

func (c *Coordinator) handleReady(s *session, a PlayerReady) error {
	p := s.state.FindPlayer(a.PlayerID)
	if p == nil {
		return errNotFound("Player not found")
	}
	p.IsReady = a.IsReady
	c.persistPlayer(p)
	if a.IsReady {
		s.state.Message = p.Name + " is ready!"
	} else {
		s.state.Message = p.Name + " is not ready."
	}
	return nil
}

func (c *Coordinator) handleChat(s *session, a SendChat) error {
	p := s.state.FindPlayer(a.PlayerID)
	if p == nil {
		return errNotFound("Player not found in game!")
	}
	c.broadcast.EmitToRoom(s.roomID, EventChatMessage, map[string]interface{}{
		"playerId": p.ID,
		"name":     p.Name,
		"message":  a.Message,
	})
	return nil
}

func (c *Coordinator) handleProposeGameEnd(s *session, a ProposeGameEnd) error {
	if s.state.Room.HostID != a.PlayerID {
		return errRule("Only the host can propose to end the game!")
	}
	if s.state.Room.Status == models.RoomFinished {
		return errRule("Game is already finished!")
	}
	p := s.state.FindPlayer(a.PlayerID)
	name := a.PlayerID
	if p != nil {
		name = p.Name
	}
	c.broadcast.EmitToRoom(s.roomID, EventGameEndProposed, map[string]interface{}{
		"proposedBy": a.PlayerID,
		"playerName": name,
	})
	s.state.Message = name + " proposed to end the game. Waiting for player responses..."
	return nil
}

func (c *Coordinator) handleVoteGameEnd(s *session, a VoteGameEnd) error {
	if s.state.Room.Status == models.RoomFinished {
		return errRule("Game is already finished!")
	}
	// Only the host's agreeing vote is decisive, everyone else's votes
	// are advisory for now.
	if !a.Agree || s.state.Room.HostID != a.PlayerID {
		return nil
	}
	c.finishGame(s, "Game ended by host.")
	return nil
}

func (c *Coordinator) emitError(playerID string, err error) {
	if playerID == "" {
		return
	}
	c.broadcast.EmitToPlayer(playerID, EventError, ErrorPayload{Message: err.Error()})
}

func (c *Coordinator) broadcastState(s *session) {
	if s.state == nil {
		return
	}
	snap := s.state.Snapshot()
	c.broadcast.EmitToRoom(s.roomID, EventRoomUpdated, snap)
	if c.snapshots != nil {
		go func() {
			if err := c.snapshots.SaveGameState(snap.Room.ID, snap); err != nil {
				log.Printf("[SNAPSHOT-ERROR] room %s: %v", snap.Room.ID, err)
			}
		}()
	}
}

// mustBeTurn gates the turn-bound actions.
func (c *Coordinator) mustBeTurn(s *session, playerID string) (*Player, error) {
	p := s.state.FindPlayer(playerID)
	if p == nil {
		return nil, errNotFound("Player not found")
	}
	if s.state.CurrentPlayerTurn != playerID {
		return nil, errRule("Not your turn!")
	}
	if p.IsBankrupt {
		return nil, errRule("You are bankrupt and out of the game!")
	}
	return p, nil
}
