package notification

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles the mailbox endpoints of the authenticated user.
type NotificationHandler struct {
	service *NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// MarkAllSeen moves all of the caller's unseen notifications to the seen list.
func (h *NotificationHandler) MarkAllSeen(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Invalid or missing token"})
	}

	box, err := h.service.MarkAllSeen(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to update notifications"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "All notifications seen",
		"data":    box,
	})
}

// DeleteAll clears both of the caller's notification lists.
func (h *NotificationHandler) DeleteAll(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Invalid or missing token"})
	}

	box, err := h.service.DeleteAll(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to delete notifications"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "All notifications deleted",
		"data":    box,
	})
}
