package game

import (
	"testing"

	"Tycoon/services/cards"

	models "Tycoon/models/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovePlayerWrapsAndPaysGo(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	p.Position = 2
	passedGo := c.movePlayer(s, p, 3)
	assert.False(t, passedGo)
	assert.Equal(t, 5, p.Position)
	assert.Equal(t, 1500, p.Cash)

	p.Position = 38
	passedGo = c.movePlayer(s, p, 4)
	assert.True(t, passedGo)
	assert.Equal(t, 2, p.Position)
	assert.Equal(t, 1700, p.Cash)
}

func TestMoveToPaysGoOnWrap(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	p.Position = 30
	c.moveTo(s, p, 5)
	assert.Equal(t, 5, p.Position)
	assert.Equal(t, 1700, p.Cash)

	// forward move without wrap pays nothing
	c.moveTo(s, p, 20)
	assert.Equal(t, 20, p.Position)
	assert.Equal(t, 1700, p.Cash)
}

func TestRollInJailDoublesRelease(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 10
	p.InJail = true
	p.JailTurns = 1

	c.rollInJail(s, p, 3, 3)

	assert.False(t, p.InJail)
	assert.Equal(t, 0, p.JailTurns)
	assert.Equal(t, 16, p.Position)
}

func TestRollInJailFailedAttemptCounts(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 10
	p.InJail = true

	c.rollInJail(s, p, 4, 5)

	assert.True(t, p.InJail)
	assert.Equal(t, 1, p.JailTurns)
	assert.Equal(t, 10, p.Position)
	assert.Equal(t, 1500, p.Cash)
}

func TestRollInJailThirdFailureForcesBail(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 10
	p.InJail = true
	p.JailTurns = 2

	c.rollInJail(s, p, 2, 6)

	assert.False(t, p.InJail)
	assert.Equal(t, 0, p.JailTurns)
	assert.Equal(t, 1450, p.Cash)
}

func TestForcedBailCanBankrupt(t *testing.T) {
	c, _, broadcast := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Cash = 20
	p.InJail = true
	p.JailTurns = 2
	s.state.FindProperty("brown1").OwnerID = "p1"

	c.rollInJail(s, p, 2, 6)

	assert.True(t, p.IsBankrupt)
	assert.Equal(t, -30, p.Cash)
	assert.Equal(t, "", s.state.FindProperty("brown1").OwnerID)
	// single survivor ends the game
	assert.Equal(t, models.RoomFinished, s.state.Room.Status)
	require.Len(t, broadcast.roomEvents(EventGameEnded), 1)
}

func TestLandingOnTaxDebits(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	c.applyLanding(s, p, s.state.FindProperty("tax1"), 7)

	assert.Equal(t, 1400, p.Cash)
}

func TestLandingOnOwnedStreetPaysRent(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p1 := s.state.FindPlayer("p1")
	p2 := s.state.FindPlayer("p2")
	s.state.FindProperty("brown1").OwnerID = "p2"

	c.applyLanding(s, p1, s.state.FindProperty("brown1"), 7)

	assert.Equal(t, 1494, p1.Cash)
	assert.Equal(t, 1506, p2.Cash)
	assert.Equal(t, 3000, p1.Cash+p2.Cash)
}

func TestLandingOnFullGroupDoublesRent(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p1 := s.state.FindPlayer("p1")
	s.state.FindProperty("brown1").OwnerID = "p2"
	s.state.FindProperty("brown2").OwnerID = "p2"

	c.applyLanding(s, p1, s.state.FindProperty("brown1"), 7)

	assert.Equal(t, 1500-12, p1.Cash)
}

func TestLandingOnMortgagedStreetIsFree(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p1 := s.state.FindPlayer("p1")
	prop := s.state.FindProperty("brown1")
	prop.OwnerID = "p2"
	prop.IsMortgaged = true

	c.applyLanding(s, p1, prop, 7)

	assert.Equal(t, 1500, p1.Cash)
}

func TestRentBankruptcyRevertsHoldings(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p1 := s.state.FindPlayer("p1")
	p2 := s.state.FindPlayer("p2")
	p1.Cash = 30

	rented := s.state.FindProperty("brown1")
	rented.OwnerID = "p2"
	rented.Houses = 2 // 60 rent, p1 can only cover half

	owned := s.state.FindProperty("brown2")
	owned.OwnerID = "p1"
	owned.Houses = 3

	c.applyLanding(s, p1, rented, 7)

	assert.True(t, p1.IsBankrupt)
	assert.Equal(t, -30, p1.Cash)
	assert.Equal(t, 1560, p2.Cash)
	assert.Equal(t, "", owned.OwnerID)
	assert.Equal(t, 0, owned.Houses)
	assert.False(t, owned.HasHotel)
	assert.Equal(t, models.RoomFinished, s.state.Room.Status)
}

func TestLandingOnGoToJail(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 30

	c.applyLanding(s, p, s.state.FindProperty("gotojail"), 7)

	assert.True(t, p.InJail)
	assert.Equal(t, 10, p.Position)
	assert.Equal(t, 0, p.JailTurns)
}

func TestEndTurnAdvancesAndResetsDice(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.DiceRolled = true
	s.state.LastDiceRoll = [2]int{2, 3}

	err := c.handleEndTurn(s, EndTurn{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.NoError(t, err)
	assert.Equal(t, "p2", s.state.CurrentPlayerTurn)
	assert.False(t, s.state.DiceRolled)
}

func TestEndTurnDoublesKeepTurn(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.DiceRolled = true
	s.state.LastDiceRoll = [2]int{4, 4}

	err := c.handleEndTurn(s, EndTurn{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.NoError(t, err)
	assert.Equal(t, "p1", s.state.CurrentPlayerTurn)
	assert.False(t, s.state.DiceRolled)
}

func TestEndTurnRequiresRoll(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	err := c.handleEndTurn(s, EndTurn{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.Error(t, err)
	assert.Equal(t, ErrRuleViolation, err.(*Error).Kind)
}

func TestEndTurnRejectsOutOfTurn(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.DiceRolled = true

	err := c.handleEndTurn(s, EndTurn{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p2"}})

	require.Error(t, err)
}

func TestPayBail(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.InJail = true
	p.JailTurns = 1
	s.state.DiceRolled = true

	err := c.handlePayBail(s, PayBail{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.NoError(t, err)
	assert.False(t, p.InJail)
	assert.Equal(t, 1450, p.Cash)
	assert.False(t, s.state.DiceRolled)
}

func TestPayBailRequiresJailAndFunds(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	err := c.handlePayBail(s, PayBail{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})
	require.Error(t, err)

	p.InJail = true
	p.Cash = 20
	err = c.handlePayBail(s, PayBail{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})
	require.Error(t, err)
	assert.True(t, p.InJail)
	assert.Equal(t, 20, p.Cash)
}

func TestUseJailCard(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.InJail = true
	p.GetOutOfJailFreeCards = 1

	err := c.handleUseJailCard(s, UseJailCard{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.NoError(t, err)
	assert.False(t, p.InJail)
	assert.Equal(t, 0, p.GetOutOfJailFreeCards)
	assert.Equal(t, 1500, p.Cash)

	// no card, no release
	p.InJail = true
	err = c.handleUseJailCard(s, UseJailCard{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})
	require.Error(t, err)
	assert.True(t, p.InJail)
}

func TestApplyCardCollectAndPay(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Collect $150",
		Effect: cards.EffectCollect, Amount: 150})
	assert.Equal(t, 1650, p.Cash)

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Pay $15",
		Effect: cards.EffectPay, Amount: 15})
	assert.Equal(t, 1635, p.Cash)
}

func TestApplyCardBirthdayCollectsFromEveryone(t *testing.T) {
	c, _, _ := newTestCoordinator()
	state := twoPlayerState()
	state.Room.Players = append(state.Room.Players,
		&Player{ID: "p3", Name: "Carol", Cash: 1500, TurnOrder: 2})
	s := newTestSession(state)
	p := s.state.FindPlayer("p1")

	c.applyCard(s, p, cards.Card{Deck: cards.CommunityChest, Description: "Birthday",
		Effect: cards.EffectPerPlayer, Amount: -10})

	assert.Equal(t, 1520, p.Cash)
	assert.Equal(t, 1490, s.state.FindPlayer("p2").Cash)
	assert.Equal(t, 1490, s.state.FindPlayer("p3").Cash)
}

func TestApplyCardChairmanPaysEveryone(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Chairman",
		Effect: cards.EffectPerPlayer, Amount: 50})

	assert.Equal(t, 1450, p.Cash)
	assert.Equal(t, 1550, s.state.FindPlayer("p2").Cash)
}

func TestApplyCardStreetRepairs(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	b1 := s.state.FindProperty("brown1")
	b1.OwnerID = "p1"
	b1.Houses = 2
	b2 := s.state.FindProperty("brown2")
	b2.OwnerID = "p1"
	b2.HasHotel = true

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Repairs",
		Effect: cards.EffectStreetRepairs, PerHouse: 25, PerHotel: 100})

	assert.Equal(t, 1500-150, p.Cash)
}

func TestApplyCardMoveToWrapsPastGo(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 30

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Advance",
		Effect: cards.EffectMoveTo, Position: 5})

	assert.Equal(t, 5, p.Position)
	assert.Equal(t, 1700, p.Cash)
}

func TestApplyCardMoveBack(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 2

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Back 3",
		Effect: cards.EffectMoveBack, Amount: 3})

	assert.Equal(t, 39, p.Position)
	assert.Equal(t, 1500, p.Cash)
}

func TestApplyCardNearestRailroad(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	p.Position = 2

	c.applyCard(s, p, cards.Card{Deck: cards.Chance, Description: "Nearest railroad",
		Effect: cards.EffectNearestRailroad})

	assert.Equal(t, 5, p.Position)
}

func TestApplyCardGetOutOfJailFree(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	c.applyCard(s, p, cards.Card{Deck: cards.CommunityChest, Description: "GOOJF",
		Effect: cards.EffectGetOutOfJail})

	assert.Equal(t, 1, p.GetOutOfJailFreeCards)
}

func TestRollDiceRejectsSecondRoll(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.DiceRolled = true

	err := c.handleRollDice(s, RollDice{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})

	require.Error(t, err)
	assert.Equal(t, ErrRuleViolation, err.(*Error).Kind)
}

func TestRollDiceKeepsPositionInRange(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")

	for i := 0; i < 50; i++ {
		s.state.DiceRolled = false
		err := c.handleRollDice(s, RollDice{ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Position, 0)
		assert.Less(t, p.Position, s.state.Room.BoardSize)
		assert.True(t, s.state.DiceRolled)
		// keep the fixture stable across iterations
		p.InJail = false
		p.JailTurns = 0
		p.Cash = 1500
		p.IsBankrupt = false
		s.state.FindPlayer("p2").Cash = 1500
	}
}
