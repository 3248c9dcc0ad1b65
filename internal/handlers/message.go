package handlers

import (
	"banter/server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler serves the messaging pipeline
type MessageHandler struct {
	Messages *service.Messages
}

// SendMessageRequest represents send message request body
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// Send sends a direct message to a friend
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	message, err := h.Messages.Send(userID, req.ReceiverID, req.Content)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    message,
	})
}

// GetConversation returns the full history with a friend. Retrieval
// marks the friend's unseen messages as seen, so calling this endpoint
// as the receiver flips read state.
func (h *MessageHandler) GetConversation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	friendID := c.Params("friendId")

	conversation, err := h.Messages.Conversation(userID, friendID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    conversation,
	})
}

// Delete removes one of the caller's own messages
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	messageID := c.Params("messageId")

	if err := h.Messages.Delete(userID, messageID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message deleted successfully",
	})
}

// MarkSeen marks a message received by the caller as seen
func (h *MessageHandler) MarkSeen(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	messageID := c.Params("messageId")

	if err := h.Messages.MarkSeen(userID, messageID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message marked as seen",
	})
}
