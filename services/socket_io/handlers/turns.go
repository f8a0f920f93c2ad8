package handlers

import (
	"Tycoon/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

func HandleRollDice(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.RollDice{ActionBase: baseFrom(payload)})
	}
}

func HandleEndTurn(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.EndTurn{ActionBase: baseFrom(payload)})
	}
}

func HandlePayBail(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.PayBail{ActionBase: baseFrom(payload)})
	}
}

func HandleUseJailCard(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.UseJailCard{ActionBase: baseFrom(payload)})
	}
}

func baseFrom(payload map[string]interface{}) game.ActionBase {
	return game.ActionBase{
		RoomID:   getString(payload, "roomId"),
		PlayerID: getString(payload, "playerId"),
	}
}
