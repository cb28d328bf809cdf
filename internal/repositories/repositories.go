package repositories

import (
	"time"

	"github.com/sanmarcos/conecta/backend/internal/seed"
)

// Repositories bundles the collections owned by one forum instance
type Repositories struct {
	Posts         PostRepository
	Comments      CommentRepository
	Reports       ReportRepository
	Notifications NotificationRepository
	Users         UserRepository
}

// NewSeededRepositories creates in-memory repositories loaded with the seed
// data, timestamped at now
func NewSeededRepositories(now time.Time) *Repositories {
	return &Repositories{
		Posts:         NewMemoryPostRepository(seed.Posts(now)),
		Comments:      NewMemoryCommentRepository(seed.Comments(now)),
		Reports:       NewMemoryReportRepository(),
		Notifications: NewMemoryNotificationRepository(),
		Users:         NewMemoryUserRepository(seed.Users()),
	}
}
