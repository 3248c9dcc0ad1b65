package handlers

import (
	"banter/server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves profile updates and the user directory
type UserHandler struct {
	Users *service.Users
}

// UpdateProfileRequest represents profile update request body. Absent
// fields are left unchanged.
type UpdateProfileRequest struct {
	Username   *string `json:"username"`
	ProfilePic *string `json:"profilePic"`
}

// UpdateProfile overwrites the provided profile fields
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user, err := h.Users.UpdateProfile(userID, service.ProfileUpdate{
		Username:   req.Username,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user.ToResponse(),
	})
}

// Search returns users matching the query, excluding the caller
func (h *UserHandler) Search(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	query := c.Query("q", "")

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Users.Search(query, userID),
	})
}
