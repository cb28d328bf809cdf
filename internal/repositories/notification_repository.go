package repositories

import (
	"fmt"
	"slices"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification models.Notification) error
	GetNotificationByID(id string) (models.Notification, bool)
	GetByRecipientID(recipientID string) []models.Notification
	GetUnreadCount(recipientID string) int
	MarkAsRead(notificationID string) bool
	MarkAllAsRead(recipientID string) int
}

// MemoryNotificationRepository implements NotificationRepository over a
// slice kept in insertion order
type MemoryNotificationRepository struct {
	notifications []models.Notification
}

// NewMemoryNotificationRepository creates an empty MemoryNotificationRepository
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

// CreateNotification appends a notification
func (r *MemoryNotificationRepository) CreateNotification(notification models.Notification) error {
	if _, ok := r.GetNotificationByID(notification.ID); ok {
		return fmt.Errorf("notification %s: %w", notification.ID, ErrDuplicateID)
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *MemoryNotificationRepository) GetNotificationByID(id string) (models.Notification, bool) {
	idx := r.indexOf(id)
	if idx == -1 {
		return models.Notification{}, false
	}
	return r.notifications[idx], true
}

// GetByRecipientID returns newest first; notifications created at the same
// instant come out latest-created first.
func (r *MemoryNotificationRepository) GetByRecipientID(recipientID string) []models.Notification {
	out := make([]models.Notification, 0)
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == recipientID {
			out = append(out, r.notifications[i])
		}
	}
	slices.SortStableFunc(out, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func (r *MemoryNotificationRepository) GetUnreadCount(recipientID string) int {
	n := 0
	for _, notif := range r.notifications {
		if notif.UserID == recipientID && !notif.Read {
			n++
		}
	}
	return n
}

// MarkAsRead flags one notification as read. Marking twice is harmless.
func (r *MemoryNotificationRepository) MarkAsRead(notificationID string) bool {
	idx := r.indexOf(notificationID)
	if idx == -1 {
		return false
	}
	r.notifications[idx].Read = true
	return true
}

func (r *MemoryNotificationRepository) MarkAllAsRead(recipientID string) int {
	n := 0
	for i := range r.notifications {
		if r.notifications[i].UserID == recipientID && !r.notifications[i].Read {
			r.notifications[i].Read = true
			n++
		}
	}
	return n
}

func (r *MemoryNotificationRepository) indexOf(id string) int {
	return slices.IndexFunc(r.notifications, func(n models.Notification) bool { return n.ID == id })
}
