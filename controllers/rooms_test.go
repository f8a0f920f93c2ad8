package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Ping)

	w := performRequest(r, "GET", "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCreateRoomValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms", CreateRoom(db))

	// missing required fields
	w := performRequest(r, "POST", "/rooms", gin.H{"name": "My room"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// board size not a multiple of 4
	w = performRequest(r, "POST", "/rooms", gin.H{
		"name": "My room", "hostId": "p1", "boardSize": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// too few players allowed
	w = performRequest(r, "POST", "/rooms", gin.H{
		"name": "My room", "hostId": "p1", "maxPlayers": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinRoomNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/join", JoinRoom(db))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(r, "POST", "/rooms/join", gin.H{
		"roomId": "missing", "playerId": "p1", "name": "Alice",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinRoomRejectsStartedGame(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/join", JoinRoom(db))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "max_players"}).
			AddRow("room1", "PLAYING", 6))

	w := performRequest(r, "POST", "/rooms/join", gin.H{
		"roomId": "room1", "playerId": "p1", "name": "Alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already started")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinRoomRejectsFullRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/join", JoinRoom(db))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "max_players"}).
			AddRow("room1", "WAITING", 2))
	mock.ExpectQuery(`SELECT (.+) FROM "players"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "name", "color"}).
			AddRow("p1", "room1", "Alice", "red").
			AddRow("p2", "room1", "Bob", "blue"))

	w := performRequest(r, "POST", "/rooms/join", gin.H{
		"roomId": "room1", "playerId": "p3", "name": "Carol",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinRoomRejectsTakenColor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/join", JoinRoom(db))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "max_players"}).
			AddRow("room1", "WAITING", 6))
	mock.ExpectQuery(`SELECT (.+) FROM "players"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "name", "color"}).
			AddRow("p1", "room1", "Alice", "red"))

	w := performRequest(r, "POST", "/rooms/join", gin.H{
		"roomId": "room1", "playerId": "p2", "name": "Bob", "color": "red",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Color already taken")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartRoomHostOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/start", StartRoom(db, nil))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "host_id"}).
			AddRow("room1", "WAITING", "p1"))

	w := performRequest(r, "POST", "/rooms/start", gin.H{
		"roomId": "room1", "playerId": "p2",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "host")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartRoomRequiresReadyPlayers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.POST("/rooms/start", StartRoom(db, nil))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "host_id", "board_size"}).
			AddRow("room1", "WAITING", "p1", 40))
	mock.ExpectQuery(`SELECT (.+) FROM "players"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "is_ready"}).
			AddRow("p1", "room1", true).
			AddRow("p2", "room1", false))

	w := performRequest(r, "POST", "/rooms/start", gin.H{
		"roomId": "room1", "playerId": "p1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllRooms(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	r := gin.New()
	r.GET("/rooms", GetAllRooms(db))

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "host_id"}).
			AddRow("room1", "Friday night", "WAITING", "p1"))
	mock.ExpectQuery(`SELECT (.+) FROM "players"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "name", "color", "is_ready"}).
			AddRow("p1", "room1", "Alice", "red", true))

	w := performRequest(r, "GET", "/rooms", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "room1", rooms[0]["id"])
	assert.Equal(t, "Friday night", rooms[0]["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
