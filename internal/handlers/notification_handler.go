package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct{}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications returns the logged-in user's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	if notModified(c, "notifications", sess.Versions().Notifications) {
		return c.NoContent(http.StatusNotModified)
	}

	page, limit := pageParams(c, 20)
	notifications := sess.Notifications()

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notifications": paginate(notifications, page, limit),
			"unreadCount":   sess.UnreadNotificationsCount(),
		},
		"meta": pageMeta(page, limit, len(notifications)),
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": sess.UnreadNotificationsCount()}})
}

// MarkAsRead marks one of the user's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	notification, ok := sess.Forum().NotificationByID(c.Param("id"))
	if !ok || notification.UserID != sess.CurrentUser().ID {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}

	sess.MarkNotificationAsRead(notification.ID)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

// MarkAllAsRead marks all of the user's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	marked := sess.MarkAllNotificationsAsRead()

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"marked": marked}})
}
