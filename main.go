package main

import (
	"log"
	"os"

	"Tycoon/config"
	"Tycoon/middleware"
	"Tycoon/routes"
	"Tycoon/services/game"
	"Tycoon/services/redis"
	"Tycoon/services/socket_io"
	socketio_types "Tycoon/services/socket_io/types"
	"Tycoon/services/sync"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()
	// Setup DB conn
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connection to Redis successful")
	defer redis.CloseRedis(redisClient)

	sio := socketio_types.NewSocketServer()
	syncManager := sync.NewSyncManager(gormDB)
	coordinator := game.NewCoordinator(syncManager, sio, redisClient)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, gormDB, coordinator)

	(*socket_io.MySocketServer)(sio).Start(r, coordinator, redisClient)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
