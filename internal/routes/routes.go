package routes

import (
	"banter/server/internal/handlers"
	"banter/server/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything SetupRoutes wires up.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Friends       *handlers.FriendHandler
	Messages      *handlers.MessageHandler
	Notifications *handlers.NotificationHandler
	WS            *handlers.WebSocketHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, h Handlers) {
	// API v1 group
	api := app.Group("/api/v1")

	// Health check (public)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Banter API is running",
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.StrictRateLimiter(), h.Auth.Register)
	auth.Post("/login", middleware.StrictRateLimiter(), h.Auth.Login)
	auth.Post("/logout", middleware.AuthMiddleware, h.Auth.Logout)
	auth.Get("/me", middleware.AuthMiddleware, h.Auth.GetMe)
	auth.Put("/change-password", middleware.AuthMiddleware, h.Auth.ChangePassword)
	auth.Post("/delete-account", middleware.AuthMiddleware, h.Auth.DeleteAccount)

	// User routes (protected)
	users := api.Group("/users", middleware.AuthMiddleware)
	users.Put("/profile", h.Users.UpdateProfile)
	users.Get("/search", h.Users.Search)

	// Friend routes (protected)
	friends := api.Group("/friends", middleware.AuthMiddleware)
	friends.Post("/request", h.Friends.SendRequest)
	friends.Post("/accept/:userId", h.Friends.Accept)
	friends.Post("/reject/:userId", h.Friends.Reject)
	friends.Get("/", h.Friends.List)
	friends.Get("/requests", h.Friends.PendingRequests)
	friends.Delete("/:userId", h.Friends.Remove)

	// Message routes (protected)
	messages := api.Group("/messages", middleware.AuthMiddleware)
	messages.Post("/", h.Messages.Send)
	messages.Put("/seen/:messageId", h.Messages.MarkSeen)
	messages.Get("/:friendId", h.Messages.GetConversation)
	messages.Delete("/:messageId", h.Messages.Delete)

	// Notification routes (protected)
	notifications := api.Group("/notifications", middleware.AuthMiddleware)
	notifications.Get("/", h.Notifications.List)
	notifications.Put("/read-all", h.Notifications.MarkAllRead)
	notifications.Put("/:notificationId/read", h.Notifications.MarkRead)
	notifications.Delete("/clear-all", h.Notifications.ClearAll)
	notifications.Delete("/:notificationId", h.Notifications.Delete)

	// WebSocket route (protected)
	api.Get("/ws", middleware.AuthMiddleware, h.WS.Upgrade, websocket.New(h.WS.Handle))

	// WebSocket stats (protected, for debugging)
	api.Get("/ws/stats", middleware.AuthMiddleware, h.WS.Stats)
}
