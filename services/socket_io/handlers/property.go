package handlers

import (
	"Tycoon/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

func propertyActionFrom(payload map[string]interface{}) game.PropertyAction {
	return game.PropertyAction{
		ActionBase: baseFrom(payload),
		PropertyID: getString(payload, "propertyId"),
	}
}

func HandleBuyProperty(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.BuyProperty{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandleBuildHouse(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.BuildHouse{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandleBuildHotel(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.BuildHotel{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandleMortgageProperty(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.MortgageProperty{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandleUnmortgageProperty(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.UnmortgageProperty{PropertyAction: propertyActionFrom(payload)})
	}
}

func HandleSellHouse(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.SellHouse{PropertyAction: propertyActionFrom(payload)})
	}
}
