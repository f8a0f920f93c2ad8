package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Tycoon/services/game"
	"Tycoon/services/redis"
	"Tycoon/services/socket_io/handlers"
	socketio_types "Tycoon/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, coordinator *game.Coordinator, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	if sio.UserConnections == nil {
		sio.UserConnections = make(map[string]*socket.Socket)
	}

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		server := (*socketio_types.SocketServer)(sio)

		fmt.Println("An individual just connected!: ", client.Id())

		// Room membership and lobby
		client.On("join-room", handlers.HandleJoinRoom(coordinator, client, server))
		client.On("player-ready", handlers.HandlePlayerReady(coordinator, client))

		// Turn cycle
		client.On("roll-dice", handlers.HandleRollDice(coordinator, client))
		client.On("end-turn", handlers.HandleEndTurn(coordinator, client))
		client.On("pay-bail", handlers.HandlePayBail(coordinator, client))
		client.On("use-get-out-of-jail-card", handlers.HandleUseJailCard(coordinator, client))

		// Properties and buildings
		client.On("buy-property", handlers.HandleBuyProperty(coordinator, client))
		client.On("build-house", handlers.HandleBuildHouse(coordinator, client))
		client.On("build-hotel", handlers.HandleBuildHotel(coordinator, client))
		client.On("mortgage-property", handlers.HandleMortgageProperty(coordinator, client))
		client.On("unmortgage-property", handlers.HandleUnmortgageProperty(coordinator, client))
		client.On("sell-house", handlers.HandleSellHouse(coordinator, client))

		// Auctions
		client.On("start-auction", handlers.HandleStartAuction(coordinator, client))
		client.On("place-bid", handlers.HandlePlaceBid(coordinator, client))
		client.On("cancel-auction", handlers.HandleCancelAuction(coordinator, client))

		// Trading
		client.On("propose-trade", handlers.HandleProposeTrade(coordinator, client))
		client.On("respond-to-trade", handlers.HandleRespondTrade(coordinator, client))
		client.On("cancel-trade", handlers.HandleCancelTrade(coordinator, client))

		// Game end voting
		client.On("propose-game-end", handlers.HandleProposeGameEnd(coordinator, client))
		client.On("vote-game-end", handlers.HandleVoteGameEnd(coordinator, client))

		// Chat
		client.On("send-chat-message", handlers.HandleSendChatMessage(coordinator, client, redisClient))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(client, server))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
