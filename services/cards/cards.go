package cards

type DeckType string

const (
	Chance         DeckType = "CHANCE"
	CommunityChest DeckType = "COMMUNITY_CHEST"
)

type EffectType string

const (
	EffectMoveTo          EffectType = "MOVE_TO"           // absolute position, pays GO when wrapping
	EffectMoveBack        EffectType = "MOVE_BACK"         // relative backward move
	EffectNearestRailroad EffectType = "NEAREST_RAILROAD"  // forward to the next railroad tile
	EffectNearestUtility  EffectType = "NEAREST_UTILITY"   // forward to the next utility tile
	EffectGoToJail        EffectType = "GO_TO_JAIL"
	EffectGetOutOfJail    EffectType = "GET_OUT_OF_JAIL"
	EffectPay             EffectType = "PAY"               // fixed amount to the bank
	EffectCollect         EffectType = "COLLECT"           // fixed amount from the bank
	EffectStreetRepairs   EffectType = "STREET_REPAIRS"    // per house / per hotel across holdings
	EffectPerPlayer       EffectType = "PER_PLAYER"        // pay (or, if negative, collect) per other player
)

type Card struct {
	ID          string
	Deck        DeckType
	Title       string
	Description string
	Effect      EffectType
	Amount      int // PAY/COLLECT/PER_PLAYER amount, MOVE_BACK distance
	Position    int // MOVE_TO target
	PerHouse    int
	PerHotel    int
}

var ChanceCards = []Card{
	{ID: "chance_1", Deck: Chance, Title: "Advance to GO", Description: "Advance to GO (Collect $200)", Effect: EffectMoveTo, Position: 0},
	{ID: "chance_2", Deck: Chance, Title: "Advance to Illinois Avenue", Description: "Advance to Illinois Avenue. If you pass GO, collect $200", Effect: EffectMoveTo, Position: 24},
	{ID: "chance_3", Deck: Chance, Title: "Advance to St. Charles Place", Description: "Advance to St. Charles Place. If you pass GO, collect $200", Effect: EffectMoveTo, Position: 11},
	{ID: "chance_4", Deck: Chance, Title: "Advance to Nearest Railroad", Description: "Advance to the nearest Railroad", Effect: EffectNearestRailroad},
	{ID: "chance_5", Deck: Chance, Title: "Advance to Nearest Utility", Description: "Advance to the nearest Utility", Effect: EffectNearestUtility},
	{ID: "chance_6", Deck: Chance, Title: "Bank Dividend", Description: "Bank pays you dividend of $50", Effect: EffectCollect, Amount: 50},
	{ID: "chance_7", Deck: Chance, Title: "Get Out of Jail Free", Description: "Get Out of Jail Free", Effect: EffectGetOutOfJail},
	{ID: "chance_8", Deck: Chance, Title: "Go Back 3 Spaces", Description: "Go Back 3 Spaces", Effect: EffectMoveBack, Amount: 3},
	{ID: "chance_9", Deck: Chance, Title: "Go to Jail", Description: "Go to Jail. Go directly to Jail, do not pass GO, do not collect $200", Effect: EffectGoToJail},
	{ID: "chance_10", Deck: Chance, Title: "Property Repairs", Description: "Make general repairs on all your property. For each house pay $25. For each hotel pay $100", Effect: EffectStreetRepairs, PerHouse: 25, PerHotel: 100},
	{ID: "chance_11", Deck: Chance, Title: "Speeding Fine", Description: "Speeding fine $15", Effect: EffectPay, Amount: 15},
	{ID: "chance_12", Deck: Chance, Title: "Advance to Reading Railroad", Description: "Take a trip to Reading Railroad. If you pass GO, collect $200", Effect: EffectMoveTo, Position: 5},
	{ID: "chance_13", Deck: Chance, Title: "Advance to Boardwalk", Description: "Advance to Boardwalk", Effect: EffectMoveTo, Position: 39},
	{ID: "chance_14", Deck: Chance, Title: "Chairman of the Board", Description: "You have been elected Chairman of the Board. Pay each player $50", Effect: EffectPerPlayer, Amount: 50},
	{ID: "chance_15", Deck: Chance, Title: "Building Loan Matures", Description: "Your building loan matures. Collect $150", Effect: EffectCollect, Amount: 150},
	{ID: "chance_16", Deck: Chance, Title: "Crossword Competition", Description: "You have won a crossword competition. Collect $100", Effect: EffectCollect, Amount: 100},
}

var CommunityChestCards = []Card{
	{ID: "community_1", Deck: CommunityChest, Title: "Advance to GO", Description: "Advance to GO (Collect $200)", Effect: EffectMoveTo, Position: 0},
	{ID: "community_2", Deck: CommunityChest, Title: "Bank Error", Description: "Bank error in your favor. Collect $200", Effect: EffectCollect, Amount: 200},
	{ID: "community_3", Deck: CommunityChest, Title: "Doctor Fee", Description: "Doctor fee. Pay $50", Effect: EffectPay, Amount: 50},
	{ID: "community_4", Deck: CommunityChest, Title: "Stock Sale", Description: "From sale of stock you get $50", Effect: EffectCollect, Amount: 50},
	{ID: "community_5", Deck: CommunityChest, Title: "Get Out of Jail Free", Description: "Get Out of Jail Free", Effect: EffectGetOutOfJail},
	{ID: "community_6", Deck: CommunityChest, Title: "Go to Jail", Description: "Go to Jail. Go directly to jail, do not pass GO, do not collect $200", Effect: EffectGoToJail},
	{ID: "community_7", Deck: CommunityChest, Title: "Holiday Fund", Description: "Holiday fund matures. Receive $100", Effect: EffectCollect, Amount: 100},
	{ID: "community_8", Deck: CommunityChest, Title: "Income Tax Refund", Description: "Income tax refund. Collect $20", Effect: EffectCollect, Amount: 20},
	{ID: "community_9", Deck: CommunityChest, Title: "Birthday Money", Description: "It is your birthday. Collect $10 from every player", Effect: EffectPerPlayer, Amount: -10},
	{ID: "community_10", Deck: CommunityChest, Title: "Life Insurance", Description: "Life insurance matures. Collect $100", Effect: EffectCollect, Amount: 100},
	{ID: "community_11", Deck: CommunityChest, Title: "Hospital Bills", Description: "Pay hospital fees of $100", Effect: EffectPay, Amount: 100},
	{ID: "community_12", Deck: CommunityChest, Title: "School Fees", Description: "Pay school fees of $50", Effect: EffectPay, Amount: 50},
	{ID: "community_13", Deck: CommunityChest, Title: "Consultancy Fee", Description: "Receive $25 consultancy fee", Effect: EffectCollect, Amount: 25},
	{ID: "community_14", Deck: CommunityChest, Title: "Street Repairs", Description: "You are assessed for street repair. $40 per house. $115 per hotel", Effect: EffectStreetRepairs, PerHouse: 40, PerHotel: 115},
	{ID: "community_15", Deck: CommunityChest, Title: "Beauty Contest", Description: "You have won second prize in a beauty contest. Collect $10", Effect: EffectCollect, Amount: 10},
	{ID: "community_16", Deck: CommunityChest, Title: "Inheritance", Description: "You inherit $100", Effect: EffectCollect, Amount: 100},
}

func definitions(t DeckType) []Card {
	if t == Chance {
		return ChanceCards
	}
	return CommunityChestCards
}
