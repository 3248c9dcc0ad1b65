package middleware

import (
	"net/http"
	"testing"

	"banter/server/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func TestGetUserID(t *testing.T) {
	app := fiber.New()
	app.Get("/anon", func(c *fiber.Ctx) error {
		if got := GetUserID(c); got != "" {
			t.Errorf("expected empty user ID without auth, got %q", got)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/authed", AuthMiddleware, func(c *fiber.Ctx) error {
		if got := GetUserID(c); got != "u1" {
			t.Errorf("expected user ID u1 from context, got %q", got)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/anon", nil)
	if _, err := app.Test(req, -1); err != nil {
		t.Fatal(err)
	}

	token, err := utils.GenerateToken("u1", "u1@example.com")
	if err != nil {
		t.Fatal(err)
	}
	req, _ = http.NewRequest("GET", "/authed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 through auth middleware, got %d", resp.StatusCode)
	}
}
