package handlers

import (
	"banter/server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FriendHandler serves the friend-request lifecycle and friend list
type FriendHandler struct {
	Friends *service.Friends
}

// SendRequestRequest represents send friend request body
type SendRequestRequest struct {
	ReceiverID string `json:"receiverId"`
}

// SendRequest sends a friend request
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req SendRequestRequest
	if err := c.BodyParser(&req); err != nil || req.ReceiverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Receiver ID is required",
		})
	}

	if err := h.Friends.SendRequest(userID, req.ReceiverID); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Friend request sent successfully",
	})
}

// Accept accepts a pending request from the user in the path
func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	requesterID := c.Params("userId")

	friend, err := h.Friends.AcceptRequest(userID, requesterID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    friend,
	})
}

// Reject rejects a pending request from the user in the path
func (h *FriendHandler) Reject(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	requesterID := c.Params("userId")

	if err := h.Friends.RejectRequest(userID, requesterID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Friend request rejected successfully",
	})
}

// List returns the caller's friends with presence
func (h *FriendHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Friends.List(userID),
	})
}

// PendingRequests returns the senders of requests awaiting the caller
func (h *FriendHandler) PendingRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Friends.PendingRequests(userID),
	})
}

// Remove deletes a friendship
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	otherID := c.Params("userId")

	if err := h.Friends.Remove(userID, otherID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Friend removed successfully",
	})
}
