package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proposeTrade(t *testing.T, c *Coordinator, s *session, a ProposeTrade) *TradeProposal {
	t.Helper()
	require.NoError(t, c.handleProposeTrade(s, a))
	require.Len(t, s.trades, 1)
	for _, tr := range s.trades {
		return tr
	}
	return nil
}

func TestProposeTradeValidation(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	// self trade
	err := c.handleProposeTrade(s, ProposeTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID: "p1",
	})
	require.Error(t, err)

	// offering a property the proposer does not own
	err = c.handleProposeTrade(s, ProposeTrade{
		ActionBase:        ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:        "p2",
		OfferedProperties: []string{"brown1"},
	})
	require.Error(t, err)

	// requesting more cash than the recipient has
	err = c.handleProposeTrade(s, ProposeTrade{
		ActionBase:    ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:    "p2",
		RequestedCash: 2000,
	})
	require.Error(t, err)
	assert.Empty(t, s.trades)
}

func TestAcceptTradeSwapsEverything(t *testing.T) {
	c, _, broadcast := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.FindProperty("brown1").OwnerID = "p1"
	s.state.FindProperty("rail1").OwnerID = "p2"

	trade := proposeTrade(t, c, s, ProposeTrade{
		ActionBase:          ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:          "p2",
		OfferedProperties:   []string{"brown1"},
		OfferedCash:         100,
		RequestedProperties: []string{"rail1"},
		RequestedCash:       50,
	})
	assert.Len(t, broadcast.roomEvents(EventTradeProposed), 1)

	err := c.handleRespondTrade(s, RespondTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"},
		TradeID:    trade.ID,
		Accept:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, TradeAccepted, trade.Status)
	assert.Equal(t, "p2", s.state.FindProperty("brown1").OwnerID)
	assert.Equal(t, "p1", s.state.FindProperty("rail1").OwnerID)
	assert.Equal(t, 1450, s.state.FindPlayer("p1").Cash)
	assert.Equal(t, 1550, s.state.FindPlayer("p2").Cash)
	assert.Len(t, broadcast.roomEvents(EventTradeResolved), 1)
}

func TestAcceptStaleTradeCancels(t *testing.T) {
	c, _, broadcast := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.FindProperty("brown1").OwnerID = "p1"

	trade := proposeTrade(t, c, s, ProposeTrade{
		ActionBase:        ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:        "p2",
		OfferedProperties: []string{"brown1"},
		RequestedCash:     200,
	})

	// the offered property changed hands while the trade sat open
	s.state.FindProperty("brown1").OwnerID = "p2"

	err := c.handleRespondTrade(s, RespondTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"},
		TradeID:    trade.ID,
		Accept:     true,
	})

	require.Error(t, err)
	assert.Equal(t, ErrStale, err.(*Error).Kind)
	assert.Equal(t, TradeCancelled, trade.Status)
	assert.Equal(t, 1500, s.state.FindPlayer("p1").Cash)
	assert.Equal(t, 1500, s.state.FindPlayer("p2").Cash)
	assert.Len(t, broadcast.roomEvents(EventTradeCancelled), 1)
}

func TestRejectTrade(t *testing.T) {
	c, _, broadcast := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	trade := proposeTrade(t, c, s, ProposeTrade{
		ActionBase:  ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:  "p2",
		OfferedCash: 100,
	})

	err := c.handleRespondTrade(s, RespondTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"},
		TradeID:    trade.ID,
		Accept:     false,
	})

	require.NoError(t, err)
	assert.Equal(t, TradeRejected, trade.Status)
	assert.Equal(t, 1500, s.state.FindPlayer("p1").Cash)
	assert.Len(t, broadcast.roomEvents(EventTradeResolved), 1)

	// a closed trade cannot be answered again
	err = c.handleRespondTrade(s, RespondTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"},
		TradeID:    trade.ID,
		Accept:     true,
	})
	require.Error(t, err)
}

func TestRespondTradeRecipientOnly(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	trade := proposeTrade(t, c, s, ProposeTrade{
		ActionBase:  ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:  "p2",
		OfferedCash: 100,
	})

	err := c.handleRespondTrade(s, RespondTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"},
		TradeID:    trade.ID,
		Accept:     true,
	})

	require.Error(t, err)
	assert.Equal(t, TradePending, trade.Status)
}

func TestCancelTradeProposerOnly(t *testing.T) {
	c, _, broadcast := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	trade := proposeTrade(t, c, s, ProposeTrade{
		ActionBase:  ActionBase{RoomID: "room1", PlayerID: "p1"},
		ToPlayerID:  "p2",
		OfferedCash: 100,
	})

	err := c.handleCancelTrade(s, CancelTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"}, TradeID: trade.ID})
	require.Error(t, err)
	assert.Equal(t, TradePending, trade.Status)

	require.NoError(t, c.handleCancelTrade(s, CancelTrade{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, TradeID: trade.ID}))
	assert.Equal(t, TradeCancelled, trade.Status)
	assert.Len(t, broadcast.roomEvents(EventTradeCancelled), 1)
}
