package handlers

import (
	"banter/server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler serves the notification inbox
type NotificationHandler struct {
	Notifications *service.Notifications
}

// List returns the caller's notifications, newest first
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Notifications.ListFor(userID),
	})
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	notificationID := c.Params("notificationId")

	if err := h.Notifications.MarkRead(userID, notificationID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}

// MarkAllRead marks every notification of the caller as read
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	h.Notifications.MarkAllRead(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All notifications marked as read",
	})
}

// Delete removes one notification
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	notificationID := c.Params("notificationId")

	if err := h.Notifications.Delete(userID, notificationID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted successfully",
	})
}

// ClearAll removes every notification of the caller
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	h.Notifications.ClearAll(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All notifications cleared",
	})
}
