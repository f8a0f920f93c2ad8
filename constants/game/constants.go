package game_constants

import "time"

const StartingCash = 1500
const GoBonus = 200
const BailAmount = 50
const TaxAmount = 100
const HouseCost = 50
const HotelCost = 100
const MaxJailTurns = 3
const MaxHousesPerProperty = 4

// Asset valuation used for final scores
const HouseAssetValue = 50
const HotelAssetValue = 100

// Mortgage rules: half price in, half price + interest out
const MortgageInterestPct = 10

// Auction constants
const (
	AuctionDuration     = 30 * time.Second
	AuctionRetention    = 60 * time.Second
	AuctionStartBidPct  = 50 // starting bid as % of listed price
)

// Trade proposals are kept around after resolution so clients can render the outcome
const TradeRetention = 60 * time.Second

// Bounded retry for the join-room read, absorbs replication lag of the store
const (
	JoinMaxRetries   = 7
	JoinBaseDelay    = 150 * time.Millisecond
	JoinDelayFactor  = 1.5
	JoinMaxDelay     = 3000 * time.Millisecond
)
