package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyAction(playerID, propertyID string) BuyProperty {
	return BuyProperty{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: playerID},
		PropertyID: propertyID,
	}}
}

func TestBuyProperty(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.DiceRolled = true

	err := c.handleBuyProperty(s, buyAction("p1", "rail1"))

	require.NoError(t, err)
	assert.Equal(t, "p1", s.state.FindProperty("rail1").OwnerID)
	assert.Equal(t, 1300, s.state.FindPlayer("p1").Cash)
}

func TestBuyPropertyRejections(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())

	// before rolling
	s.state.DiceRolled = false
	err := c.handleBuyProperty(s, buyAction("p1", "rail1"))
	require.Error(t, err)

	s.state.DiceRolled = true

	// out of turn
	err = c.handleBuyProperty(s, buyAction("p2", "rail1"))
	require.Error(t, err)

	// non-purchasable tile
	err = c.handleBuyProperty(s, buyAction("p1", "tax1"))
	require.Error(t, err)

	// already owned
	s.state.FindProperty("rail1").OwnerID = "p2"
	err = c.handleBuyProperty(s, buyAction("p1", "rail1"))
	require.Error(t, err)

	// insufficient cash
	s.state.FindProperty("rail1").OwnerID = ""
	s.state.FindPlayer("p1").Cash = 100
	err = c.handleBuyProperty(s, buyAction("p1", "rail1"))
	require.Error(t, err)
	assert.Equal(t, "", s.state.FindProperty("rail1").OwnerID)
}

func TestBuildHouse(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.FindProperty("brown1").OwnerID = "p1"
	s.state.FindProperty("brown2").OwnerID = "p1"

	err := c.handleBuildHouse(s, BuildHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.NoError(t, err)
	assert.Equal(t, 1, s.state.FindProperty("brown1").Houses)
	assert.Equal(t, 1450, s.state.FindPlayer("p1").Cash)
}

func TestBuildHouseRequiresFullGroup(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.FindProperty("brown1").OwnerID = "p1"

	err := c.handleBuildHouse(s, BuildHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.Error(t, err)
	assert.Equal(t, ErrRuleViolation, err.(*Error).Kind)
}

func TestBuildHouseEvenRule(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b2 := s.state.FindProperty("brown2")
	b1.OwnerID = "p1"
	b2.OwnerID = "p1"
	b1.Houses = 1

	// brown1 would pull ahead of brown2
	err := c.handleBuildHouse(s, BuildHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})
	require.Error(t, err)

	// the lagging street may build
	err = c.handleBuildHouse(s, BuildHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown2"}})
	require.NoError(t, err)
	assert.Equal(t, 1, b2.Houses)
}

func TestBuildHouseBlockedOnMortgaged(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b1.OwnerID = "p1"
	b1.IsMortgaged = true
	s.state.FindProperty("brown2").OwnerID = "p1"

	err := c.handleBuildHouse(s, BuildHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.Error(t, err)
}

func TestBuildHotel(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b2 := s.state.FindProperty("brown2")
	b1.OwnerID = "p1"
	b2.OwnerID = "p1"
	b1.Houses = 4
	b2.Houses = 4

	err := c.handleBuildHotel(s, BuildHotel{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.NoError(t, err)
	assert.True(t, b1.HasHotel)
	assert.Equal(t, 0, b1.Houses)
	assert.Equal(t, 1400, s.state.FindPlayer("p1").Cash)
}

func TestBuildHotelNeedsFourHouses(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b1.OwnerID = "p1"
	s.state.FindProperty("brown2").OwnerID = "p1"
	b1.Houses = 3

	err := c.handleBuildHotel(s, BuildHotel{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.Error(t, err)
	assert.False(t, b1.HasHotel)
}

func TestSellHouse(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b2 := s.state.FindProperty("brown2")
	b1.OwnerID = "p1"
	b2.OwnerID = "p1"
	b1.Houses = 2
	b2.Houses = 1

	err := c.handleSellHouse(s, SellHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.NoError(t, err)
	assert.Equal(t, 1, b1.Houses)
	assert.Equal(t, 1525, s.state.FindPlayer("p1").Cash)

	// brown2 is now the lagging street, selling it would break evenness
	err = c.handleSellHouse(s, SellHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown2"}})
	require.NoError(t, err)

	// nothing left to sell
	err = c.handleSellHouse(s, SellHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown2"}})
	require.Error(t, err)
}

func TestSellHouseEvenRule(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b2 := s.state.FindProperty("brown2")
	b1.OwnerID = "p1"
	b2.OwnerID = "p1"
	b1.Houses = 2
	b2.Houses = 1

	// the less built street may not shed while a sibling has more
	err := c.handleSellHouse(s, SellHouse{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown2"}})

	require.Error(t, err)
	assert.Equal(t, 1, b2.Houses)
}

func TestMortgageAndUnmortgage(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	p := s.state.FindPlayer("p1")
	b1 := s.state.FindProperty("brown1")
	b1.OwnerID = "p1"

	err := c.handleMortgage(s, MortgageProperty{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})
	require.NoError(t, err)
	assert.True(t, b1.IsMortgaged)
	assert.Equal(t, 1530, p.Cash)

	// principal 30 plus 10% interest
	err = c.handleUnmortgage(s, UnmortgageProperty{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})
	require.NoError(t, err)
	assert.False(t, b1.IsMortgaged)
	assert.Equal(t, 1497, p.Cash)
}

func TestMortgageBlockedWithBuildings(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	b1 := s.state.FindProperty("brown1")
	b1.OwnerID = "p1"
	b1.Houses = 1

	err := c.handleMortgage(s, MortgageProperty{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.Error(t, err)
	assert.False(t, b1.IsMortgaged)
}

func TestMortgageRequiresOwnership(t *testing.T) {
	c, _, _ := newTestCoordinator()
	s := newTestSession(twoPlayerState())
	s.state.FindProperty("brown1").OwnerID = "p2"

	err := c.handleMortgage(s, MortgageProperty{PropertyAction: PropertyAction{
		ActionBase: ActionBase{RoomID: "room1", PlayerID: "p1"}, PropertyID: "brown1"}})

	require.Error(t, err)
}
