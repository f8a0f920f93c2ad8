package handlers

import (
	"Tycoon/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

func HandleProposeGameEnd(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.ProposeGameEnd{ActionBase: baseFrom(payload)})
	}
}

func HandleVoteGameEnd(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.VoteGameEnd{
			ActionBase: baseFrom(payload),
			Agree:      getBool(payload, "agree"),
		})
	}
}
