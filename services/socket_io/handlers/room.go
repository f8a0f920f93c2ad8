package handlers

import (
	"log"

	"Tycoon/services/game"
	socketio_types "Tycoon/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoinRoom joins the socket to the room channel and asks the game
// core to register the player. The core retries the roster read itself,
// so a player created through the REST join endpoint a moment ago is
// still found.
func HandleJoinRoom(coordinator *game.Coordinator, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		roomID := getString(payload, "roomId")
		playerID := getString(payload, "playerId")
		log.Printf("[JOIN] player %s joining room %s (socket %s)", playerID, roomID, client.Id())

		sio.AddConnection(playerID, client)
		client.Join(socket.Room(roomID))

		coordinator.Dispatch(game.JoinRoom{
			ActionBase: game.ActionBase{RoomID: roomID, PlayerID: playerID},
		})
	}
}

func HandlePlayerReady(coordinator *game.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := parsePayload(client, args)
		if !ok {
			return
		}
		coordinator.Dispatch(game.PlayerReady{
			ActionBase: game.ActionBase{
				RoomID:   getString(payload, "roomId"),
				PlayerID: getString(payload, "playerId"),
			},
			IsReady: getBool(payload, "isReady"),
		})
	}
}

// HandleDisconnecting drops the socket from the connection map. The
// player stays in the game; reconnecting re-joins the room channel.
func HandleDisconnecting(client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		sio.RemoveConnectionBySocket(client)
		log.Printf("[DISCONNECT] socket %s disconnecting", client.Id())
	}
}
