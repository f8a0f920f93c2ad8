package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It is used to handle socket.io connections.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track playerID -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(playerID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[playerID] = client
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.UserConnections[playerID]
	return client, exists
}

// RemoveConnectionBySocket drops whatever player id the socket was
// registered under.
func (s *SocketServer) RemoveConnectionBySocket(client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for playerID, conn := range s.UserConnections {
		if conn == client {
			delete(s.UserConnections, playerID)
			return
		}
	}
}

// EmitToRoom broadcasts an event to every socket joined to the room.
func (s *SocketServer) EmitToRoom(roomID string, event string, payload interface{}) {
	if s.Sio_server == nil {
		return
	}
	s.Sio_server.To(socket.Room(roomID)).Emit(event, payload)
}

// EmitToPlayer sends an event to one player's socket, if connected.
func (s *SocketServer) EmitToPlayer(playerID string, event string, payload interface{}) {
	if client, ok := s.GetConnection(playerID); ok {
		client.Emit(event, payload)
	}
}
