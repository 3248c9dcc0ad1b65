package main

import (
	"log"
	"os"

	"banter/server/internal/handlers"
	"banter/server/internal/routes"
	"banter/server/internal/service"
	"banter/server/internal/store"
	ws "banter/server/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// All state is memory-resident and lost on restart
	db := store.New()
	hub := ws.NewHub(db)

	users := service.NewUsers(db, hub)
	friends := service.NewFriends(db, hub)
	messages := service.NewMessages(db, hub)
	notifications := service.NewNotifications(db)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Banter API v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(app, routes.Handlers{
		Auth:          &handlers.AuthHandler{Users: users},
		Users:         &handlers.UserHandler{Users: users},
		Friends:       &handlers.FriendHandler{Friends: friends},
		Messages:      &handlers.MessageHandler{Messages: messages},
		Notifications: &handlers.NotificationHandler{Notifications: notifications},
		WS:            &handlers.WebSocketHandler{Hub: hub},
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
