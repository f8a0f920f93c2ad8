package handlers

import (
	"Tycoon/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

func HandleProposeTrade(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.ProposeTrade{
			ActionBase:          baseFrom(payload),
			ToPlayerID:          getString(payload, "toPlayerId"),
			OfferedProperties:   getStringSlice(payload, "offeredProperties"),
			OfferedCash:         getInt(payload, "offeredCash"),
			RequestedProperties: getStringSlice(payload, "requestedProperties"),
			RequestedCash:       getInt(payload, "requestedCash"),
		})
	}
}

func HandleRespondTrade(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.RespondTrade{
			ActionBase: baseFrom(payload),
			TradeID:    getString(payload, "tradeId"),
			Accept:     getBool(payload, "accept"),
		})
	}
}

func HandleCancelTrade(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.CancelTrade{
			ActionBase: baseFrom(payload),
			TradeID:    getString(payload, "tradeId"),
		})
	}
}
