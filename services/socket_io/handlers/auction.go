package handlers

import (
	"Tycoon/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

func HandleStartAuction(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.StartAuction{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandlePlaceBid(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.PlaceBid{
			ActionBase: baseFrom(payload),
			AuctionID:  getString(payload, "auctionId"),
			BidAmount:  getInt(payload, "bidAmount"),
		})
	}
}

func HandleCancelAuction(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.CancelAuction{
			ActionBase: baseFrom(payload),
			AuctionID:  getString(payload, "auctionId"),
		})
	}
}
