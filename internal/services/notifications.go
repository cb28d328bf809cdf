package services

import "github.com/sanmarcos/conecta/backend/internal/models"

// NotificationsForUser returns a user's notifications, newest first
func (s *ForumService) NotificationsForUser(userID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationRepository.GetByRecipientID(userID)
}

// UnreadNotificationCount counts a user's unread notifications
func (s *ForumService) UnreadNotificationCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationRepository.GetUnreadCount(userID)
}

// NotificationByID looks up a notification
func (s *ForumService) NotificationByID(id string) (models.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationRepository.GetNotificationByID(id)
}

// MarkNotificationAsRead flags one notification as read. It is idempotent
// and reports whether the notification exists.
func (s *ForumService) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationRepository.MarkAsRead(id)
}

// MarkAllNotificationsAsRead flags every notification of a user as read
func (s *ForumService) MarkAllNotificationsAsRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationRepository.MarkAllAsRead(userID)
}
